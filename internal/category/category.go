package category

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

var ErrNotFound = errors.New("category not found")

// Category is a user-defined expense category a flow may reference.
type Category struct {
	ID        uuid.UUID
	Owner     scope.Scope
	Name      string
	CreatedAt time.Time
}
