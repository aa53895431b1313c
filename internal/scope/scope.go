package scope

import (
	"context"

	"github.com/google/uuid"
)

// Scope identifies whose data an operation may read and write: a single
// user, optionally widened to the family they belong to. It is resolved
// by the caller (auth middleware, CLI flags) and threaded explicitly
// through every service call.
type Scope struct {
	UserID   uuid.UUID
	FamilyID *uuid.UUID
}

// Personal returns a scope covering only the given user's rows.
func Personal(userID uuid.UUID) Scope {
	return Scope{UserID: userID}
}

// Family returns a scope covering the user's rows plus rows shared with
// their family.
func Family(userID, familyID uuid.UUID) Scope {
	return Scope{UserID: userID, FamilyID: &familyID}
}

// Shared reports whether the scope includes family-shared rows.
func (s Scope) Shared() bool {
	return s.FamilyID != nil
}

type ctxKey struct{}

// WithContext returns a context carrying the scope.
func WithContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the scope stored by WithContext.
func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(ctxKey{}).(Scope)
	return s, ok
}
