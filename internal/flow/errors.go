package flow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("flow not found")

// ValidationError reports a structural problem with a flow before any
// write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferenceError reports a referenced asset, debt or category that does
// not exist or is not visible in the caller's scope.
type ReferenceError struct {
	Kind string
	ID   uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
