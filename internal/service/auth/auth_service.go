package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/leavehub/leavehub-backend-go/internal/domain/auth"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.Code)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(emp)
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, email string) (auth.TokenResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, auth.ErrEmailNotRegistered
	}
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return s.issueTokens(emp)
}

func (s *AuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	employeeID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if !emp.Status.IsActive() {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

func (s *AuthService) issueTokens(emp employee.Employee) (auth.TokenResponse, error) {
	if !emp.Status.IsActive() {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Employee:              employee.ToResponse(emp),
	}, nil
}
