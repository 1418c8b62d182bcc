package httpx

import (
	"net/http"
	"strings"

	"locallibrary/internal/auth"
	"locallibrary/internal/entity"
)

// LoginURL is where unauthenticated callers of a gated route are sent.
const LoginURL = "/accounts/login"

// AuthMiddleware requires a valid bearer token. Callers without one
// are redirected to the login surface rather than failed hard.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Redirect(w, r, LoginURL, http.StatusSeeOther)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				http.Redirect(w, r, LoginURL, http.StatusSeeOther)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCanMarkReturned gates loan-management routes. An
// authenticated caller without the permission gets a hard 403, never
// a silent downgrade. Must run inside AuthMiddleware.
func RequireCanMarkReturned(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !entity.CanMarkReturned(RoleFrom(r)) {
			JSONError(w, http.StatusForbidden, "FORBIDDEN", "You do not have permission to manage loans", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the management console descriptors.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFrom(r) != entity.RoleAdmin {
			JSONError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
