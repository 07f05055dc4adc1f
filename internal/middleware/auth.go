package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/transport"
)

type userIDKey struct{}

// Auth gates admin endpoints behind a signed bearer token. On success the
// authenticated user id is attached to the request context; on any failure the
// downstream handler is never invoked.
func Auth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				transport.WriteError(w, http.StatusUnauthorized, "not authorized, no token", nil)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				transport.WriteError(w, http.StatusUnauthorized, "not authorized, no token", nil)
				return
			}

			claims, err := manager.Parse(parts[1])
			if err != nil || claims.Subject == "" {
				transport.WriteError(w, http.StatusUnauthorized, "not authorized, token failed", nil)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) string {
	if v := ctx.Value(userIDKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
