package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid employee ID or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrEmailNotLinked      = errors.New("no employee account linked to this email")

	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
