package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/auth"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/oauth"
)

const loginHistoryLimit = 20

type AuthServiceImpl struct {
	employeeRepo  employee.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(employeeRepo employee.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.Service. Unknown IDs and wrong passwords return the
// same error so the response does not reveal which accounts exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	emp, ok := employees[req.EmployeeID]
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if emp.Blocked {
		return auth.LoginResponse{}, employee.ErrEmployeeBlocked
	}

	if err := s.recordLogin(ctx, employees, emp, session); err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(emp)
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	employeeID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	emp, ok := employees[employeeID]
	if !ok {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if emp.Blocked {
		return auth.RefreshResponse{}, employee.ErrEmployeeBlocked
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.EmployeeID, emp.Name, emp.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// LoginWithGoogle implements auth.Service. The Google email must already be
// linked to an employee record; no account is created on the fly.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrEmailNotLinked
	}

	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	var emp employee.Employee
	found := false
	for _, candidate := range employees {
		if candidate.Email != "" && strings.EqualFold(candidate.Email, info.Email) {
			emp = candidate
			found = true
			break
		}
	}
	if !found {
		return auth.LoginResponse{}, auth.ErrEmailNotLinked
	}
	if emp.Blocked {
		return auth.LoginResponse{}, employee.ErrEmployeeBlocked
	}

	if err := s.recordLogin(ctx, employees, emp, session); err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(emp)
}

// recordLogin appends a login-history event, keeping only the most recent
// entries.
func (s *AuthServiceImpl) recordLogin(ctx context.Context, employees employee.Collection, emp employee.Employee, session auth.SessionTrackingRequest) error {
	emp.LoginHistory = append(emp.LoginHistory, employee.LoginEvent{
		Time:      time.Now(),
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
	})
	if len(emp.LoginHistory) > loginHistoryLimit {
		emp.LoginHistory = emp.LoginHistory[len(emp.LoginHistory)-loginHistoryLimit:]
	}
	employees[emp.EmployeeID] = emp

	if err := s.employeeRepo.Replace(ctx, employees); err != nil {
		return fmt.Errorf("failed to save login history: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(emp employee.Employee) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.EmployeeID, emp.Name, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		EmployeeID:            emp.EmployeeID,
		Name:                  emp.Name,
		Role:                  string(emp.Role),
	}, nil
}
