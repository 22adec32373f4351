// Package api implements the DokoNepal REST API using chi.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/dokonepal/doko/internal/auth"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware returns middleware that resolves the Bearer token to a
// session and stores it on the request context. If enabled is false, all
// requests pass through without a session (open mode for local demos).
func SessionMiddleware(enabled bool, mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			sess, err := mgr.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
		})
	}
}

// RequireAdmin rejects requests whose session does not carry the admin
// role. When auth is disabled there is no session and everything is
// allowed through.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(r.Context())
		if ok && sess.Role != auth.RoleAdmin {
			writeJSON(w, http.StatusForbidden, errorBody("admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionFrom(ctx context.Context) (auth.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(auth.Session)
	return sess, ok
}
