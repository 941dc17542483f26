// Package middleware holds the HTTP middleware for the phonebook server:
// API key authentication and the audit trail interceptor.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"phonebook-api/pkg/credentials"
)

// APIKeyHeader is the request header carrying the caller's API key.
const APIKeyHeader = "X-API-Key"

type contextKey int

const roleContextKey contextKey = iota

// APIKeyAuthenticator is middleware that resolves the X-API-Key header to
// a role via the keyring. Missing and unknown keys are both rejected with
// 403; the response does not reveal which case it was.
type APIKeyAuthenticator struct {
	Keyring *credentials.Keyring
}

// NewAPIKeyAuthenticator creates a new API key authenticator middleware
func NewAPIKeyAuthenticator(keyring *credentials.Keyring) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{Keyring: keyring}
}

// Middleware returns an HTTP middleware that validates the API key and
// stores the resolved role in the request context.
func (a *APIKeyAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(APIKeyHeader)

		role, ok := a.Keyring.Lookup(apiKey)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid API Key"})
			return
		}

		ctx := context.WithValue(r.Context(), roleContextKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleFromContext returns the role stored by the authenticator middleware.
func RoleFromContext(ctx context.Context) (credentials.Role, bool) {
	role, ok := ctx.Value(roleContextKey).(credentials.Role)
	return role, ok
}
