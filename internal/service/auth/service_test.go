package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/auth"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPassword   = "password123"
)

func newTestService(t *testing.T) (auth.Service, employee.Repository, jwt.Service) {
	store := docstore.NewMemoryStore()
	employeeRepo := document.NewEmployeeRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, employeeRepo.Replace(context.Background(), employee.Collection{
		"emp-001": {
			EmployeeID:   "emp-001",
			Name:         "Dana Cruz",
			Role:         employee.RoleEmployee,
			PasswordHash: string(hash),
		},
		"emp-blocked": {
			EmployeeID:   "emp-blocked",
			Name:         "Blocked User",
			Role:         employee.RoleEmployee,
			Blocked:      true,
			PasswordHash: string(hash),
		},
	}))

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(employeeRepo, jwtService, nil), employeeRepo, jwtService
}

func testSession() auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{IPAddress: "127.0.0.1:5000", UserAgent: "go-test"}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, jwtService := newTestService(t)

	t.Run("valid credentials issue tokens and record history", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "emp-001", Password: testPassword}, testSession())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "emp-001", resp.EmployeeID)
		assert.Equal(t, "Dana Cruz", resp.Name)

		id, err := jwtService.ValidateRefreshToken(resp.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "emp-001", id)

		employees, err := employeeRepo.All(ctx)
		require.NoError(t, err)
		history := employees["emp-001"].LoginHistory
		require.Len(t, history, 1)
		assert.Equal(t, "127.0.0.1:5000", history[0].IPAddress)
		assert.Equal(t, "go-test", history[0].UserAgent)
	})

	t.Run("wrong password and unknown ID return the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "emp-001", Password: "wrong"}, testSession())
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, err = svc.Login(ctx, auth.LoginRequest{EmployeeID: "emp-404", Password: testPassword}, testSession())
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("blocked account is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "emp-blocked", Password: testPassword}, testSession())
		assert.ErrorIs(t, err, employee.ErrEmployeeBlocked)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{}, testSession())
		assert.Error(t, err)
	})
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "emp-001", Password: testPassword}, testSession())
	require.NoError(t, err)

	t.Run("refresh issues a new access token", func(t *testing.T) {
		refreshed, err := svc.Refresh(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("access tokens cannot refresh", func(t *testing.T) {
		_, err := svc.Refresh(ctx, resp.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

		_, err := svc.Refresh(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}
