package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid employee code or password")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrEmailNotRegistered  = errors.New("email is not registered to any employee")
)
