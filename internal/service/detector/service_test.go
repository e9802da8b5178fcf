package detector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/workforce-backend-go/internal/config"
	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
)

func testCoachingConfig() config.CoachingConfig {
	return config.CoachingConfig{
		CutoffDate:        "2024-01-01",
		LookbackDays:      30,
		DefaultShiftStart: "09:00:00",
	}
}

// seedTardiness stores a full-week schedule and three late check-ins in the
// last week for the given employee.
func seedTardiness(t *testing.T, store docstore.Store, employeeID string) {
	ctx := context.Background()

	week := make(schedule.WeekSchedule)
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		week[d] = schedule.DayHours{Start: "09:00", End: "17:00"}
	}
	scheduleRepo := document.NewScheduleRepository(store)
	require.NoError(t, scheduleRepo.Replace(ctx, schedule.Collection{employeeID: week}))

	att := make(attendance.Collection)
	now := time.Now().UTC()
	for offset := 1; offset <= 3; offset++ {
		day := now.AddDate(0, 0, -offset)
		late := time.Date(day.Year(), day.Month(), day.Day(), 9, 20, 0, 0, time.UTC)
		att[day.Format("2006-01-02")] = attendance.DayRecords{
			employeeID: {Status: attendance.StatusPresent, Time: late},
		}
	}
	// Present and on time on every other day of the window
	for offset := 4; offset <= 30; offset++ {
		day := now.AddDate(0, 0, -offset)
		onTime := time.Date(day.Year(), day.Month(), day.Day(), 8, 55, 0, 0, time.UTC)
		att[day.Format("2006-01-02")] = attendance.DayRecords{
			employeeID: {Status: attendance.StatusPresent, Time: onTime},
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 8, 55, 0, 0, time.UTC)
	att[now.Format("2006-01-02")] = attendance.DayRecords{
		employeeID: {Status: attendance.StatusPresent, Time: today},
	}
	attendanceRepo := document.NewAttendanceRepository(store)
	require.NoError(t, attendanceRepo.Replace(ctx, att))
}

func newTestDetector(store docstore.Store) violation.DetectorService {
	return NewDetectorService(
		document.NewAttendanceRepository(store),
		document.NewBreakRepository(store),
		document.NewScheduleRepository(store),
		document.NewEmployeeRepository(store),
		document.NewCoachingRepository(store),
		testCoachingConfig(),
	)
}

func TestDetect(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedTardiness(t, store, "emp-001")
	detector := newTestDetector(store)

	t.Run("tardiness is detected", func(t *testing.T) {
		v, err := detector.Detect(ctx, violation.CategoryTardiness, "emp-001")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 3, v.Count)
		assert.Equal(t, 60, v.TotalMinutesLate)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := detector.Detect(ctx, violation.Category("bogus"), "emp-001")
		assert.ErrorIs(t, err, violation.ErrUnknownCategory)
	})

	t.Run("unknown employee yields nil", func(t *testing.T) {
		v, err := detector.Detect(ctx, violation.CategoryTardiness, "emp-404")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestScanAll(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	employeeRepo := document.NewEmployeeRepository(store)
	coachingRepo := document.NewCoachingRepository(store)

	require.NoError(t, employeeRepo.Replace(ctx, employee.Collection{
		"emp-001": {EmployeeID: "emp-001", Name: "Dana Cruz", Role: employee.RoleEmployee},
		"adm-001": {EmployeeID: "adm-001", Name: "Sam Admin", Role: employee.RoleAdmin},
	}))
	seedTardiness(t, store, "emp-001")

	detector := newTestDetector(store)

	summary, err := detector.ScanAll(ctx, "auto-coaching")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.EmployeesScanned, "admins are not scanned")
	assert.Equal(t, 1, summary.ViolationsFound)
	assert.Equal(t, 1, summary.ProposalsCreated)

	pending, err := coachingRepo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	p := pending[0]
	assert.Equal(t, "emp-001", p.EmployeeID)
	assert.Equal(t, "Dana Cruz", p.EmployeeName)
	assert.Equal(t, violation.CategoryTardiness, p.Category)
	assert.Equal(t, "auto-coaching", p.DetectedBy)
	assert.Len(t, p.IncidentDates, 3)
	assert.Contains(t, p.Content, "EMPLOYEE COACHING NOTICE")
	assert.Contains(t, p.Content, "Dana Cruz")

	t.Run("rescan does not duplicate pending items", func(t *testing.T) {
		summary, err := detector.ScanAll(ctx, "auto-coaching")
		require.NoError(t, err)
		assert.Equal(t, 1, summary.ViolationsFound)
		assert.Equal(t, 0, summary.ProposalsCreated)

		pending, err := coachingRepo.Pending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("suppressed incidents stop re-detection", func(t *testing.T) {
		require.NoError(t, coachingRepo.ReplacePending(ctx, nil))
		require.NoError(t, coachingRepo.ReplaceIgnored(ctx, coaching.IgnoredCollection{
			"emp-001": {
				violation.CategoryTardiness: coaching.IgnoredRecord{Dates: p.IncidentDates},
			},
		}))

		summary, err := detector.ScanAll(ctx, "auto-coaching")
		require.NoError(t, err)
		assert.Equal(t, 0, summary.ViolationsFound)
		assert.Equal(t, 0, summary.ProposalsCreated)
	})
}
