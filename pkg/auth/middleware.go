package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/adrewards/pkg/utils"
)

type ContextKey string

const (
	AccountIDKey ContextKey = "accountID"
	RoleKey      ContextKey = "role"
	TokenKey     ContextKey = "token"
)

// Middleware resolves the bearer token and stores the caller's account id,
// role and raw token in the request context.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, session.AccountID)
			ctx = context.WithValue(ctx, RoleKey, session.Role)
			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, _ := r.Context().Value(RoleKey).(string); got != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
