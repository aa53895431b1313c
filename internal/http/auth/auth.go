package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

// Claims carries the resolved owner scope inside the bearer token: the
// subject is the user id, family_id widens the scope to shared rows.
type Claims struct {
	FamilyID *uuid.UUID `json:"family_id,omitempty"`
	jwt.RegisteredClaims
}

// Middleware validates the bearer token and stores the resolved scope
// in the request context. Everything behind it can assume an
// authenticated owner.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims Claims

			parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "invalid token subject", http.StatusUnauthorized)
				return
			}

			owner := scope.Personal(userID)
			if claims.FamilyID != nil {
				owner = scope.Family(userID, *claims.FamilyID)
			}

			next.ServeHTTP(w, r.WithContext(scope.WithContext(r.Context(), owner)))
		})
	}
}

// ScopeFrom extracts the owner scope the middleware stored; ok is false
// when the request skipped the middleware.
func ScopeFrom(r *http.Request) (scope.Scope, bool) {
	return scope.FromContext(r.Context())
}
