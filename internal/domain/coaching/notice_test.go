package coaching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

func TestBuildNotice(t *testing.T) {
	v := &violation.Violation{
		Category:   violation.CategoryTardiness,
		EmployeeID: "emp-001",
		Count:      2,
		Incidents: []violation.Incident{
			{Date: "2025-03-03", MinutesLate: 20, CheckIn: "09:20", ScheduledStart: "09:00"},
			{Date: "2025-03-04", MinutesLate: 15, CheckIn: "09:15", ScheduledStart: "09:00"},
		},
		TotalMinutesLate: 35,
		DetectedAt:       time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	}

	notice := BuildNotice(v, "Dana Cruz")

	assert.Contains(t, notice.Content, "EMPLOYEE COACHING NOTICE")
	assert.Contains(t, notice.Content, "Employee: Dana Cruz")
	assert.Contains(t, notice.Content, "Subject: Tardiness")
	assert.Contains(t, notice.Content, "found 2 incident(s)")
	assert.Contains(t, notice.Content, "2025-03-03: clocked in at 09:20, 20 minute(s) after the scheduled start of 09:00")
	assert.Contains(t, notice.Content, "Total minutes late across the period: 35.")
	assert.Contains(t, notice.Content, "Employee Handbook §3.2")
	assert.Equal(t, []string{"2025-03-03", "2025-03-04"}, notice.IncidentDates)
}

func TestBuildNoticeSeriousAbsence(t *testing.T) {
	v := &violation.Violation{
		Category:   violation.CategoryAbsence,
		EmployeeID: "emp-001",
		Count:      3,
		Incidents: []violation.Incident{
			{Date: "2025-03-03", Type: violation.AbsenceTypeNCNS},
			{Date: "2025-03-04", Type: violation.AbsenceTypeNCNS},
			{Date: "2025-03-05", Type: violation.AbsenceTypeNCNS},
		},
		ConsecutiveAbsences: 3,
		Serious:             true,
		DetectedAt:          time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	}

	notice := BuildNotice(v, "Dana Cruz")

	assert.Contains(t, notice.Content, "run of 3 consecutive scheduled days")
	assert.Contains(t, notice.Content, "no attendance recorded (NCNS)")
	assert.Contains(t, notice.Content, "immediate termination")
}

func TestIncidentDatesDeduplicates(t *testing.T) {
	v := &violation.Violation{
		Category: violation.CategoryOverBreak,
		Incidents: []violation.Incident{
			{Date: "2025-03-03"},
			{Date: "2025-03-03"},
			{Date: "2025-03-05"},
		},
	}

	assert.Equal(t, []string{"2025-03-03", "2025-03-05"}, IncidentDates(v))
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "dates in free text",
			content: "Late on 2025-03-03, again on 2025-03-04.",
			want:    []string{"2025-03-03", "2025-03-04"},
		},
		{
			name:    "duplicates collapse",
			content: "2025-03-03 and 2025-03-03 once more",
			want:    []string{"2025-03-03"},
		},
		{
			name:    "impossible dates are dropped",
			content: "see 2025-13-40 and 2025-02-30",
			want:    []string{},
		},
		{
			name:    "no dates",
			content: "nothing to see here",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDates(tt.content))
		})
	}
}
