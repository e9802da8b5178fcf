package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

const (
	testEmployeeID   = "emp-001"
	defaultStartMin  = 9 * 60
	defaultStartTime = "09:00:00"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func checkIn(date string, hour, minute int) attendance.Record {
	day, _ := time.Parse("2006-01-02", date)
	return attendance.Record{
		Status: attendance.StatusPresent,
		Time:   time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC),
	}
}

func attendanceOn(records map[string]attendance.Record) attendance.Collection {
	att := make(attendance.Collection)
	for date, rec := range records {
		att[date] = attendance.DayRecords{testEmployeeID: rec}
	}
	return att
}

func fullWeek(start, end string) schedule.Collection {
	week := make(schedule.WeekSchedule)
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		week[d] = schedule.DayHours{Start: start, End: end}
	}
	return schedule.Collection{testEmployeeID: week}
}

func TestDetectTardiness(t *testing.T) {
	schedules := fullWeek("09:00", "17:00")

	t.Run("three small late check-ins trigger on count", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 5),
			"2025-03-04": checkIn("2025-03-04", 9, 3),
			"2025-03-05": checkIn("2025-03-05", 9, 7),
		})

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, violation.CategoryTardiness, v.Category)
		assert.Equal(t, 3, v.Count)
		assert.Equal(t, 15, v.TotalMinutesLate)
	})

	t.Run("one very late check-in triggers on minutes", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 45),
		})

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, 1, v.Count)
		assert.Equal(t, 45, v.TotalMinutesLate)
	})

	t.Run("two late days under thirty minutes do not trigger", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 10),
			"2025-03-04": checkIn("2025-03-04", 9, 19),
		})

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("exactly on time is not an incident", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 0),
			"2025-03-04": checkIn("2025-03-04", 8, 30),
		})

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("default shift start applies without a schedule", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 40),
		})

		v := DetectTardiness(testEmployeeID, att, schedule.Collection{}, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, 40, v.TotalMinutesLate)
		assert.Equal(t, defaultStartTime, v.Incidents[0].ScheduledStart)
	})

	t.Run("incidents outside the window are ignored", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-02-10": checkIn("2025-02-10", 10, 30),
			"2025-04-02": checkIn("2025-04-02", 10, 30),
		})

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("suppressed dates are dropped before counting", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{
			"2025-03-03": checkIn("2025-03-03", 9, 20),
			"2025-03-04": checkIn("2025-03-04", 9, 20),
		})
		suppressed := func(employeeID string, category violation.Category, date string) bool {
			return date == "2025-03-03"
		}

		v := DetectTardiness(testEmployeeID, att, schedules, testWindow(), defaultStartMin, defaultStartTime, suppressed)
		assert.Nil(t, v)
	})
}

func TestDetectOverBreak(t *testing.T) {
	entry := func(breakType breaks.BreakType, minutes int) breaks.Entry {
		start := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		end := start.Add(time.Duration(minutes) * time.Minute)
		return breaks.Entry{Type: breakType, Start: start, End: &end}
	}
	breaksOn := func(days map[string]breaks.Entry) breaks.Collection {
		brk := make(breaks.Collection)
		for date, e := range days {
			brk[date] = breaks.DayEntries{testEmployeeID: []breaks.Entry{e}}
		}
		return brk
	}

	t.Run("three over-limit breaks trigger", func(t *testing.T) {
		brk := breaksOn(map[string]breaks.Entry{
			"2025-03-03": entry(breaks.TypeBreak1, 20),
			"2025-03-04": entry(breaks.TypeLunch, 75),
			"2025-03-05": entry(breaks.TypeBreak2, 16),
		})

		v := DetectOverBreak(testEmployeeID, brk, testWindow(), violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, violation.CategoryOverBreak, v.Category)
		assert.Equal(t, 3, v.Count)
	})

	t.Run("two over-limit breaks do not trigger", func(t *testing.T) {
		brk := breaksOn(map[string]breaks.Entry{
			"2025-03-03": entry(breaks.TypeBreak1, 20),
			"2025-03-04": entry(breaks.TypeLunch, 75),
		})

		v := DetectOverBreak(testEmployeeID, brk, testWindow(), violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("exactly at the limit is not an incident", func(t *testing.T) {
		brk := breaksOn(map[string]breaks.Entry{
			"2025-03-03": entry(breaks.TypeBreak1, 15),
			"2025-03-04": entry(breaks.TypeBreak2, 15),
			"2025-03-05": entry(breaks.TypeLunch, 60),
		})

		v := DetectOverBreak(testEmployeeID, brk, testWindow(), violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("restroom breaks are exempt", func(t *testing.T) {
		brk := breaksOn(map[string]breaks.Entry{
			"2025-03-03": entry(breaks.TypeRestroom, 90),
			"2025-03-04": entry(breaks.TypeRestroom, 90),
			"2025-03-05": entry(breaks.TypeRestroom, 90),
		})

		v := DetectOverBreak(testEmployeeID, brk, testWindow(), violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("breaks still in progress are never evaluated", func(t *testing.T) {
		start := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		brk := breaks.Collection{
			"2025-03-03": breaks.DayEntries{
				testEmployeeID: []breaks.Entry{{Type: breaks.TypeLunch, Start: start}},
			},
		}

		v := DetectOverBreak(testEmployeeID, brk, testWindow(), violation.NoSuppression)
		assert.Nil(t, v)
	})
}

func TestDetectAbsence(t *testing.T) {
	// March 2025: the 3rd is a Monday.
	schedules := fullWeek("09:00", "17:00")

	t.Run("single scheduled day without attendance triggers", func(t *testing.T) {
		att := attendanceOn(map[string]attendance.Record{})
		w := Window{
			Start: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		}

		v := DetectAbsence(testEmployeeID, att, schedules, w, violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, violation.CategoryAbsence, v.Category)
		assert.Equal(t, 1, v.Count)
		assert.Equal(t, violation.AbsenceTypeNCNS, v.Incidents[0].Type)
		assert.False(t, v.Serious)
	})

	t.Run("no schedule means no absences", func(t *testing.T) {
		v := DetectAbsence(testEmployeeID, attendance.Collection{}, schedule.Collection{}, testWindow(), violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("gaps up to three days still count as consecutive", func(t *testing.T) {
		// Absent on the 3rd, 4th, 7th: the 3-day gap between the 4th and
		// the 7th keeps the run alive.
		att := make(attendance.Collection)
		for day := 1; day <= 31; day++ {
			date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			if date == "2025-03-03" || date == "2025-03-04" || date == "2025-03-07" {
				continue
			}
			att[date] = attendance.DayRecords{testEmployeeID: checkIn(date, 9, 0)}
		}

		v := DetectAbsence(testEmployeeID, att, schedules, testWindow(), violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, 3, v.ConsecutiveAbsences)
		assert.True(t, v.Serious)
	})

	t.Run("a four day gap breaks the run", func(t *testing.T) {
		att := make(attendance.Collection)
		for day := 1; day <= 31; day++ {
			date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			if date == "2025-03-03" || date == "2025-03-04" || date == "2025-03-08" {
				continue
			}
			att[date] = attendance.DayRecords{testEmployeeID: checkIn(date, 9, 0)}
		}

		v := DetectAbsence(testEmployeeID, att, schedules, testWindow(), violation.NoSuppression)
		require.NotNil(t, v)
		assert.Equal(t, 3, v.Count)
		assert.Equal(t, 2, v.ConsecutiveAbsences)
		assert.False(t, v.Serious)
	})

	t.Run("unscheduled days are never absences", func(t *testing.T) {
		// Monday-only schedule; absence can only fall on Mondays.
		weekdayOnly := schedule.Collection{
			testEmployeeID: schedule.WeekSchedule{
				"monday": {Start: "09:00", End: "17:00"},
			},
		}
		w := Window{
			Start: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		}

		v := DetectAbsence(testEmployeeID, attendance.Collection{}, weekdayOnly, w, violation.NoSuppression)
		assert.Nil(t, v)
	})

	t.Run("suppression removes absences before the run calculation", func(t *testing.T) {
		att := make(attendance.Collection)
		for day := 1; day <= 31; day++ {
			date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			if date == "2025-03-03" || date == "2025-03-04" || date == "2025-03-05" {
				continue
			}
			att[date] = attendance.DayRecords{testEmployeeID: checkIn(date, 9, 0)}
		}
		ignored := coaching.IgnoredCollection{
			testEmployeeID: {
				violation.CategoryAbsence: coaching.IgnoredRecord{
					Dates: []string{"2025-03-03", "2025-03-04", "2025-03-05"},
				},
			},
		}

		v := DetectAbsence(testEmployeeID, att, schedules, testWindow(), ignored.IsSuppressed)
		assert.Nil(t, v)
	})
}

func TestLongestRun(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 0, longestRun(nil, 3))
	assert.Equal(t, 1, longestRun([]time.Time{day(1)}, 3))
	assert.Equal(t, 3, longestRun([]time.Time{day(1), day(2), day(4), day(9)}, 3))
	assert.Equal(t, 2, longestRun([]time.Time{day(1), day(2), day(9), day(10)}, 3))
}
