package middleware

import (
	"context"
	"net/http"

	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/ports/auth"
)

// AdminChecker es la única decisión de autorización del sistema.
type AdminChecker interface {
	IsAdmin(ctx context.Context, claims auth.Claims) bool
}

// RequireAdmin responde 403 explícito a cuentas autenticadas sin rol admin.
// Debe montarse después de RequireUser.
func RequireAdmin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !checker.IsAdmin(r.Context(), claims) {
				respond.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
