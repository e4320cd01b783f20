package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	obsmw "messaging-api/internal/observability/middleware"
	"messaging-api/internal/service"
)

type usernameKey struct{}

// RequireAuth guards protected routes: a missing bearer token terminates the
// request with 401, an invalid or expired one with 403. On success the
// decoded username rides the request context.
func RequireAuth(tokens service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := obsmw.RequestIDFromContext(r.Context())

			raw := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
				slog.Warn("missing bearer token", "path", r.URL.Path, "request_id", reqID)
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Access token required"})
				return
			}
			tokenStr := strings.TrimSpace(raw[len("Bearer "):])

			username, err := tokens.Parse(tokenStr)
			if err != nil {
				slog.Warn("token rejected", "error", err, "path", r.URL.Path, "request_id", reqID)
				writeJSON(w, http.StatusForbidden, errorBody{Error: "Invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UsernameFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey{}).(string)
	return v, ok
}
