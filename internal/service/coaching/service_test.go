package coaching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
)

func newTestService(t *testing.T) (coaching.Service, coaching.Repository) {
	store := docstore.NewMemoryStore()
	repo := document.NewCoachingRepository(store)
	return NewCoachingService(repo), repo
}

func seedPending(t *testing.T, repo coaching.Repository) coaching.Pending {
	p := coaching.Pending{
		ID:            "pending-1",
		EmployeeID:    "emp-001",
		EmployeeName:  "Dana Cruz",
		Content:       "EMPLOYEE COACHING NOTICE\n\nincidents on 2025-03-03 and 2025-03-04",
		Category:      violation.CategoryTardiness,
		IncidentDates: []string{"2025-03-03", "2025-03-04"},
		DetectedAt:    "2025-03-10T08:00:00Z",
		DetectedBy:    "auto-coaching",
	}
	require.NoError(t, repo.ReplacePending(context.Background(), []coaching.Pending{p}))
	return p
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	p := seedPending(t, repo)

	log, err := svc.Approve(ctx, p.ID, "adm-001")
	require.NoError(t, err)

	assert.NotEmpty(t, log.ID)
	assert.Equal(t, p.EmployeeID, log.EmployeeID)
	assert.Equal(t, p.Content, log.Content)
	assert.Equal(t, p.Category, log.Category)
	assert.Equal(t, p.IncidentDates, log.IncidentDates)
	assert.Equal(t, "adm-001", log.IssuedBy)
	assert.False(t, log.Acknowledged)

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "approved item leaves the pending list")

	logs, err := repo.Logs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	_, err = svc.Approve(ctx, p.ID, "adm-001")
	assert.ErrorIs(t, err, coaching.ErrPendingNotFound)
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	p := seedPending(t, repo)

	require.NoError(t, svc.Reject(ctx, p.ID))

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	logs, err := repo.Logs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs, "rejection records nothing")

	ignored, err := repo.Ignored(ctx)
	require.NoError(t, err)
	assert.Empty(t, ignored, "rejected incidents stay eligible for re-detection")

	assert.ErrorIs(t, svc.Reject(ctx, p.ID), coaching.ErrPendingNotFound)
}

func TestAcknowledge(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, repo.ReplaceLogs(ctx, []coaching.Log{{
		ID:         "log-1",
		EmployeeID: "emp-001",
		Category:   violation.CategoryTardiness,
	}}))

	t.Run("signature is required", func(t *testing.T) {
		_, err := svc.Acknowledge(ctx, "log-1", coaching.AcknowledgeRequest{Signature: "  "})
		assert.ErrorIs(t, err, coaching.ErrSignatureRequired)
	})

	t.Run("acknowledgement is recorded once", func(t *testing.T) {
		log, err := svc.Acknowledge(ctx, "log-1", coaching.AcknowledgeRequest{
			Signature: "Dana Cruz",
			Comment:   "Understood",
		})
		require.NoError(t, err)
		assert.True(t, log.Acknowledged)
		require.NotNil(t, log.Signature)
		assert.Equal(t, "Dana Cruz", *log.Signature)
		assert.Equal(t, "Understood", log.Comment)

		_, err = svc.Acknowledge(ctx, "log-1", coaching.AcknowledgeRequest{Signature: "Dana Cruz"})
		assert.ErrorIs(t, err, coaching.ErrAlreadyAcknowledged)
	})

	t.Run("unknown log", func(t *testing.T) {
		_, err := svc.Acknowledge(ctx, "log-404", coaching.AcknowledgeRequest{Signature: "x"})
		assert.ErrorIs(t, err, coaching.ErrLogNotFound)
	})
}

func TestDeleteForever(t *testing.T) {
	ctx := context.Background()

	t.Run("structured incident dates are suppressed", func(t *testing.T) {
		svc, repo := newTestService(t)
		require.NoError(t, repo.ReplaceLogs(ctx, []coaching.Log{{
			ID:            "log-1",
			EmployeeID:    "emp-001",
			Category:      violation.CategoryTardiness,
			IncidentDates: []string{"2025-03-03", "2025-03-04"},
		}}))

		require.NoError(t, svc.DeleteForever(ctx, "log-1", "adm-001"))

		logs, err := repo.Logs(ctx)
		require.NoError(t, err)
		assert.Empty(t, logs)

		ignored, err := repo.Ignored(ctx)
		require.NoError(t, err)
		record := ignored["emp-001"][violation.CategoryTardiness]
		assert.Equal(t, []string{"2025-03-03", "2025-03-04"}, record.Dates)
		assert.Equal(t, "adm-001", record.DeletedBy)
		assert.NotEmpty(t, record.DeletedAt)

		assert.True(t, ignored.IsSuppressed("emp-001", violation.CategoryTardiness, "2025-03-03"))
		assert.False(t, ignored.IsSuppressed("emp-001", violation.CategoryTardiness, "2025-03-05"))
		assert.False(t, ignored.IsSuppressed("emp-001", violation.CategoryAbsence, "2025-03-03"))
	})

	t.Run("legacy logs fall back to text extraction", func(t *testing.T) {
		svc, repo := newTestService(t)
		require.NoError(t, repo.ReplaceLogs(ctx, []coaching.Log{{
			ID:         "log-legacy",
			EmployeeID: "emp-001",
			Category:   violation.CategoryAbsence,
			Content:    "Absent on 2025-02-10 and again on 2025-02-10, then 2025-02-12.",
		}}))

		require.NoError(t, svc.DeleteForever(ctx, "log-legacy", "adm-001"))

		ignored, err := repo.Ignored(ctx)
		require.NoError(t, err)
		record := ignored["emp-001"][violation.CategoryAbsence]
		assert.Equal(t, []string{"2025-02-10", "2025-02-12"}, record.Dates)
	})

	t.Run("dates merge into an existing record", func(t *testing.T) {
		svc, repo := newTestService(t)
		require.NoError(t, repo.ReplaceIgnored(ctx, coaching.IgnoredCollection{
			"emp-001": {
				violation.CategoryTardiness: coaching.IgnoredRecord{
					Dates: []string{"2025-03-03"},
				},
			},
		}))
		require.NoError(t, repo.ReplaceLogs(ctx, []coaching.Log{{
			ID:            "log-2",
			EmployeeID:    "emp-001",
			Category:      violation.CategoryTardiness,
			IncidentDates: []string{"2025-03-03", "2025-03-06"},
		}}))

		require.NoError(t, svc.DeleteForever(ctx, "log-2", "adm-001"))

		ignored, err := repo.Ignored(ctx)
		require.NoError(t, err)
		record := ignored["emp-001"][violation.CategoryTardiness]
		assert.Equal(t, []string{"2025-03-03", "2025-03-06"}, record.Dates, "no duplicates after merge")
	})

	t.Run("unknown log", func(t *testing.T) {
		svc, _ := newTestService(t)
		assert.ErrorIs(t, svc.DeleteForever(ctx, "log-404", "adm-001"), coaching.ErrLogNotFound)
	})
}

func TestClearIgnored(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, repo.ReplaceIgnored(ctx, coaching.IgnoredCollection{
		"emp-001": {
			violation.CategoryTardiness: coaching.IgnoredRecord{Dates: []string{"2025-03-03"}},
		},
	}))

	require.NoError(t, svc.ClearIgnored(ctx))

	ignored, err := repo.Ignored(ctx)
	require.NoError(t, err)
	assert.Empty(t, ignored)
}

func TestListLogs(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, repo.ReplaceLogs(ctx, []coaching.Log{
		{ID: "log-1", EmployeeID: "emp-001"},
		{ID: "log-2", EmployeeID: "emp-002"},
		{ID: "log-3", EmployeeID: "emp-001"},
	}))

	all, err := svc.ListLogs(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)

	one, err := svc.ListLogs(ctx, "emp-001")
	require.NoError(t, err)
	assert.Equal(t, 2, one.TotalCount)
	for _, l := range one.Logs {
		assert.Equal(t, "emp-001", l.EmployeeID)
	}
}
