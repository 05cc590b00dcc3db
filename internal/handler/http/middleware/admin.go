package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role. Runs after AuthRequired, so the
// claims are already verified; a missing role claim still fails closed.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Access Denied: Insufficient Permissions")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != admin.RoleAdmin {
			response.Forbidden(w, "Access Denied: Insufficient Permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
