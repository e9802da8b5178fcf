package auth

import "context"

// Service defines authentication business logic.
type Service interface {
	// Login verifies credentials, appends a login-history event, and issues
	// access and refresh tokens.
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle resolves a verified Google email to an employee and
	// issues tokens.
	LoginWithGoogle(ctx context.Context, code string, session SessionTrackingRequest) (LoginResponse, error)
}
