package breaks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
)

func newTestService(t *testing.T) breaks.Service {
	store := docstore.NewMemoryStore()
	employeeRepo := document.NewEmployeeRepository(store)
	require.NoError(t, employeeRepo.Replace(context.Background(), employee.Collection{
		"emp-001": {EmployeeID: "emp-001", Name: "Dana Cruz", Role: employee.RoleEmployee},
	}))
	return NewBreakService(document.NewBreakRepository(store), employeeRepo)
}

func TestStartAndEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	started, err := svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-001", Type: "lunch"})
	require.NoError(t, err)
	assert.Equal(t, "lunch", started.Type)
	assert.Nil(t, started.End)
	assert.Equal(t, time.Now().Format("2006-01-02"), started.Date)

	t.Run("second break cannot start while one is open", func(t *testing.T) {
		_, err := svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-001", Type: "break1"})
		assert.ErrorIs(t, err, breaks.ErrBreakInProgress)
	})

	ended, err := svc.End(ctx, "emp-001")
	require.NoError(t, err)
	require.NotNil(t, ended.End)
	assert.Equal(t, started.Index, ended.Index)

	t.Run("ending again fails", func(t *testing.T) {
		_, err := svc.End(ctx, "emp-001")
		assert.ErrorIs(t, err, breaks.ErrNoOpenBreak)
	})

	t.Run("a new break can start after the last one closed", func(t *testing.T) {
		next, err := svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-001", Type: "break1"})
		require.NoError(t, err)
		assert.Equal(t, 1, next.Index)
	})
}

func TestStartValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-001", Type: "nap"})
	assert.ErrorIs(t, err, breaks.ErrInvalidBreakType)

	_, err = svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-404", Type: "lunch"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	started, err := svc.Start(ctx, breaks.StartRequest{EmployeeID: "emp-001", Type: "break1"})
	require.NoError(t, err)
	_, err = svc.End(ctx, "emp-001")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, started.Date, "emp-001", started.Index)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	_, err = svc.Approve(ctx, started.Date, "emp-001", 5)
	assert.ErrorIs(t, err, breaks.ErrBreakNotFound)
}
