// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"fmt"
	"net/http"
)

type ctxKey string

const userKey ctxKey = "user"

// AdminAuth is a middleware that enforces HTTP Basic authentication against a
// single static username/password pair.
//
// The credentials are held and compared in plain text. There is no user
// table lookup and no hashing.
//
// On success the username is stored in the request context.
func AdminAuth(realm, username, password string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != username || pass != password {
				w.Header().Set("WWW-Authenticate", challenge)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated username, or an empty string.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
