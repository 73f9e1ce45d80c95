package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/logger"
)

// Tokener defines the session operations the middleware needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Username(ctx context.Context, tokenString string) (string, error)
}

type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// SetUsernameToContext stores the authenticated username in the context.
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext returns the authenticated username, or "" if
// the request has not passed AuthMiddleware.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// AuthMiddleware validates the session cookie and puts the resolved
// username into the request context. Requests without an active session
// are rejected with 401 before any handler or database work runs.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("unauthorized request: no session cookie", "uri", r.RequestURI)
				writeUnauthorized(w)
				return
			}

			username, err := tokener.Username(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("unauthorized request: invalid session", "uri", r.RequestURI, "err", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUsernameToContext(ctx, username)))
		})
	}
}

// SessionMiddleware resolves the session cookie into a username when one
// is present and valid, but never rejects the request. It is meant for
// pages that render differently for logged-in visitors.
func SessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				if username, err := tokener.Username(ctx, tokenString); err == nil {
					r = r.WithContext(SetUsernameToContext(ctx, username))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not authorized"})
}
