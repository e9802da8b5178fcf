package detector

import (
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
)

// Window is the inclusive calendar-day range a detection pass scans.
type Window struct {
	Start time.Time
	End   time.Time
}

// DetectTardiness scans attendance against schedules for late check-ins.
// Days without a schedule entry fall back to the default shift start, so an
// employee with no configured schedule can still be flagged against the
// default baseline. An incident requires strictly positive lateness; the
// violation triggers on count or accumulated minutes, either alone.
func DetectTardiness(
	employeeID string,
	att attendance.Collection,
	schedules schedule.Collection,
	w Window,
	defaultStartMin int,
	defaultStartClock string,
	suppressed violation.SuppressionFunc,
) *violation.Violation {
	week := schedules[employeeID]

	var incidents []violation.Incident
	totalLate := 0

	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateutil.DayFormat)
		rec, ok := att[date][employeeID]
		if !ok {
			continue
		}
		if suppressed(employeeID, violation.CategoryTardiness, date) {
			continue
		}

		startMin := defaultStartMin
		startClock := defaultStartClock
		if entry, ok := week[dateutil.DayName(day)]; ok && entry.Start != "" {
			if m, err := dateutil.MinuteOfDay(entry.Start); err == nil {
				startMin = m
				startClock = entry.Start
			}
		}

		checkInMin := rec.Time.Hour()*60 + rec.Time.Minute()
		minutesLate := checkInMin - startMin
		if minutesLate <= 0 {
			continue
		}

		incidents = append(incidents, violation.Incident{
			Date:           date,
			MinutesLate:    minutesLate,
			CheckIn:        rec.Time.Format("15:04"),
			ScheduledStart: startClock,
		})
		totalLate += minutesLate
	}

	if len(incidents) < violation.TardyCountThreshold && totalLate < violation.TardyMinutesThreshold {
		return nil
	}

	return &violation.Violation{
		Category:         violation.CategoryTardiness,
		EmployeeID:       employeeID,
		Count:            len(incidents),
		Incidents:        incidents,
		TotalMinutesLate: totalLate,
		DetectedAt:       time.Now(),
	}
}

// DetectOverBreak scans completed breaks against the per-type limits. Breaks
// still in progress (nil end) and types without a limit are never evaluated.
func DetectOverBreak(
	employeeID string,
	brk breaks.Collection,
	w Window,
	suppressed violation.SuppressionFunc,
) *violation.Violation {
	var incidents []violation.Incident

	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateutil.DayFormat)
		for _, entry := range brk[date][employeeID] {
			if entry.End == nil {
				continue
			}
			limit, ok := breaks.LimitMinutes(entry.Type)
			if !ok {
				continue
			}
			duration := int(entry.End.Sub(entry.Start).Minutes())
			if duration <= limit {
				continue
			}
			if suppressed(employeeID, violation.CategoryOverBreak, date) {
				continue
			}

			incidents = append(incidents, violation.Incident{
				Date:            date,
				BreakType:       string(entry.Type),
				DurationMinutes: duration,
				LimitMinutes:    limit,
			})
		}
	}

	if len(incidents) < violation.OverBreakCountThreshold {
		return nil
	}

	return &violation.Violation{
		Category:   violation.CategoryOverBreak,
		EmployeeID: employeeID,
		Count:      len(incidents),
		Incidents:  incidents,
		DetectedAt: time.Now(),
	}
}

// DetectAbsence flags scheduled days with no attendance record as NCNS. Any
// unsuppressed incident triggers; severity escalates when the longest run of
// absences no more than ConsecutiveGapDays apart reaches SeriousRunLength.
func DetectAbsence(
	employeeID string,
	att attendance.Collection,
	schedules schedule.Collection,
	w Window,
	suppressed violation.SuppressionFunc,
) *violation.Violation {
	week := schedules[employeeID]
	if len(week) == 0 {
		return nil
	}

	var incidents []violation.Incident
	var incidentDays []time.Time

	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		entry, ok := week[dateutil.DayName(day)]
		if !ok || entry.IsZero() {
			continue
		}
		date := day.Format(dateutil.DayFormat)
		if _, ok := att[date][employeeID]; ok {
			continue
		}
		if suppressed(employeeID, violation.CategoryAbsence, date) {
			continue
		}

		incidents = append(incidents, violation.Incident{
			Date: date,
			Type: violation.AbsenceTypeNCNS,
		})
		incidentDays = append(incidentDays, day)
	}

	if len(incidents) == 0 {
		return nil
	}

	consecutive := longestRun(incidentDays, violation.ConsecutiveGapDays)

	return &violation.Violation{
		Category:            violation.CategoryAbsence,
		EmployeeID:          employeeID,
		Count:               len(incidents),
		Incidents:           incidents,
		ConsecutiveAbsences: consecutive,
		Serious:             consecutive >= violation.SeriousRunLength,
		DetectedAt:          time.Now(),
	}
}

// longestRun returns the length of the longest run of dates where each
// consecutive pair is at most maxGapDays apart. Dates must be in ascending
// order.
func longestRun(days []time.Time, maxGapDays int) int {
	if len(days) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if dateutil.DaysBetween(days[i-1], days[i]) <= maxGapDays {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
