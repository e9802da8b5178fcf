package infraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/infraction"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
)

func newTestService(t *testing.T) (infraction.Service, infraction.Repository) {
	store := docstore.NewMemoryStore()
	employeeRepo := document.NewEmployeeRepository(store)
	require.NoError(t, employeeRepo.Replace(context.Background(), employee.Collection{
		"emp-001": {EmployeeID: "emp-001", Name: "Dana Cruz", Role: employee.RoleEmployee},
		"emp-002": {EmployeeID: "emp-002", Name: "Lee Park", Role: employee.RoleEmployee},
	}))

	repo := document.NewInfractionRepository(store)
	return NewInfractionService(repo, employeeRepo), repo
}

func TestPost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("rule details are copied from the table", func(t *testing.T) {
		record, err := svc.Post(ctx, infraction.PostRequest{
			EmployeeID:      "emp-001",
			RuleCode:        "ATT-01",
			AdditionalNotes: "Second warning this month",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, record.ID)
		assert.Equal(t, "Tardiness", record.Rule)
		assert.Equal(t, "3.2", record.Section)
		assert.Equal(t, infraction.LevelMinor, record.Level)
		assert.Equal(t, "Second warning this month", record.AdditionalNotes)
		assert.Equal(t, 1, record.OccurrenceCount)
		assert.False(t, record.Acknowledged)
	})

	t.Run("occurrence counts per employee and rule", func(t *testing.T) {
		second, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "ATT-01"})
		require.NoError(t, err)
		assert.Equal(t, 2, second.OccurrenceCount)

		third, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "ATT-01"})
		require.NoError(t, err)
		assert.Equal(t, 3, third.OccurrenceCount)

		otherRule, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "CON-01"})
		require.NoError(t, err)
		assert.Equal(t, 1, otherRule.OccurrenceCount)

		otherEmployee, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-002", RuleCode: "ATT-01"})
		require.NoError(t, err)
		assert.Equal(t, 1, otherEmployee.OccurrenceCount)
	})

	t.Run("unknown rule code", func(t *testing.T) {
		_, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "XYZ-99"})
		assert.ErrorIs(t, err, infraction.ErrInvalidRule)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-404", RuleCode: "ATT-01"})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Post(ctx, infraction.PostRequest{})
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "ATT-01"})
	require.NoError(t, err)
	_, err = svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-002", RuleCode: "SEC-01"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)

	one, err := svc.List(ctx, "emp-002")
	require.NoError(t, err)
	require.Equal(t, 1, one.TotalCount)
	assert.Equal(t, "SEC-01", one.Infractions[0].RuleCode)
}

func TestAcknowledgeInfraction(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	record, err := svc.Post(ctx, infraction.PostRequest{EmployeeID: "emp-001", RuleCode: "ATT-02"})
	require.NoError(t, err)

	acked, err := svc.Acknowledge(ctx, record.ID, infraction.AcknowledgeRequest{
		Signature: "Dana Cruz",
		Comment:   "Noted",
	})
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)
	require.NotNil(t, acked.Signature)
	assert.Equal(t, "Dana Cruz", *acked.Signature)

	_, err = svc.Acknowledge(ctx, record.ID, infraction.AcknowledgeRequest{Signature: "Dana Cruz"})
	assert.ErrorIs(t, err, infraction.ErrAlreadyAcknowledged)

	_, err = svc.Acknowledge(ctx, "missing", infraction.AcknowledgeRequest{Signature: "x"})
	assert.ErrorIs(t, err, infraction.ErrInfractionNotFound)
}
