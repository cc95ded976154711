package auth

import (
	"context"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle exchanges a verified Google email for a session. The
	// email must belong to an active employee.
	LoginWithGoogle(ctx context.Context, email string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}
