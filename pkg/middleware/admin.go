package middleware

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// AdminKey is the context key for the acting administrator's name
	AdminKey ContextKey = "admin"
)

// AdminIdentity stamps every request with the collecting administrator
// configured at startup. The household runs on trust, so there is no token
// exchange; an X-Admin header can override the identity for testing.
func AdminIdentity(defaultAdmin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := defaultAdmin
			if header := r.Header.Get("X-Admin"); header != "" {
				admin = header
			}

			ctx := context.WithValue(r.Context(), AdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin extracts the acting administrator's name from the request context
func GetAdmin(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(AdminKey).(string)
	return admin, ok
}
