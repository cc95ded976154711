package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/auth"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Identity is the caller as carried in the access token claims.
type Identity struct {
	EmployeeID string
	Code       string
	Role       employee.Role
	Department string
}

// IdentityFromContext extracts the caller from verified token claims.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, auth.ErrInvalidToken
	}

	id, ok := claims["employee_id"].(string)
	if !ok || id == "" {
		return Identity{}, auth.ErrInvalidToken
	}

	identity := Identity{EmployeeID: id}
	if code, ok := claims["code"].(string); ok {
		identity.Code = code
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = employee.Role(role)
	}
	if department, ok := claims["department"].(string); ok {
		identity.Department = department
	}
	return identity, nil
}
