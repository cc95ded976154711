package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

// RequireApprover requires a role that can decide requests
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Approver access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Approver access required")
			return
		}

		if !employee.Role(roleStr).CanApprove() {
			response.Forbidden(w, "Approver access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
