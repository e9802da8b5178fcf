package coverage

import (
	"context"
	"fmt"
	"sort"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/client"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coverage"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
)

type CoverageServiceImpl struct {
	clientRepo     client.Repository
	employeeRepo   employee.Repository
	scheduleRepo   schedule.Repository
	attendanceRepo attendance.Repository
	breakRepo      breaks.Repository
}

func NewCoverageService(
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	scheduleRepo schedule.Repository,
	attendanceRepo attendance.Repository,
	breakRepo breaks.Repository,
) coverage.Service {
	return &CoverageServiceImpl{
		clientRepo:     clientRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		breakRepo:      breakRepo,
	}
}

// ComputeCoverage implements coverage.Service.
func (s *CoverageServiceImpl) ComputeCoverage(ctx context.Context, clientID string, date string) (coverage.Report, error) {
	day, err := dateutil.ParseDay(date)
	if err != nil {
		return coverage.Report{}, err
	}
	dayName := dateutil.DayName(day)

	clients, err := s.clientRepo.All(ctx)
	if err != nil {
		return coverage.Report{}, err
	}
	c, ok := clients[clientID]
	if !ok {
		return coverage.Report{}, client.ErrClientNotFound
	}

	hours, ok := c.BusinessHours[dayName]
	if !ok || hours.IsZero() {
		return coverage.Report{}, coverage.ErrNoBusinessHours
	}

	bizStart, err := dateutil.MinuteOfDay(hours.Start)
	if err != nil {
		return coverage.Report{}, fmt.Errorf("invalid business hours for %s: %w", dayName, err)
	}
	bizEnd, err := dateutil.MinuteOfDay(hours.End)
	if err != nil {
		return coverage.Report{}, fmt.Errorf("invalid business hours for %s: %w", dayName, err)
	}
	bizMinutes := bizEnd - bizStart
	if bizMinutes <= 0 {
		return coverage.Report{}, coverage.ErrNoBusinessHours
	}

	assignments, err := s.clientRepo.Assignments(ctx)
	if err != nil {
		return coverage.Report{}, err
	}
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return coverage.Report{}, err
	}
	schedules, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return coverage.Report{}, err
	}
	att, err := s.attendanceRepo.All(ctx)
	if err != nil {
		return coverage.Report{}, err
	}
	brk, err := s.breakRepo.All(ctx)
	if err != nil {
		return coverage.Report{}, err
	}

	assigned := append([]string(nil), assignments[clientID]...)
	sort.Strings(assigned)

	report := coverage.Report{
		ClientID:        clientID,
		ClientName:      c.Name,
		Date:            date,
		DayName:         dayName,
		BusinessStart:   hours.Start,
		BusinessEnd:     hours.End,
		BusinessMinutes: bizMinutes,
		Employees:       make([]coverage.EmployeeCoverage, 0, len(assigned)),
	}

	totalMinutes := 0
	for _, employeeID := range assigned {
		ec := coverage.EmployeeCoverage{
			EmployeeID:   employeeID,
			EmployeeName: employees[employeeID].Name,
		}

		ec = s.computeEmployee(ec, employeeID, dayName, date, bizStart, bizEnd, schedules, att, brk)
		totalMinutes += ec.CoverageMinutes
		report.Employees = append(report.Employees, ec)
	}

	report.TotalCoverage = float64(totalMinutes) / float64(bizMinutes) * 100

	return report, nil
}

// computeEmployee fills in one employee's overlap against the business-hours
// window. Missing schedule or attendance short-circuits to zero coverage.
func (s *CoverageServiceImpl) computeEmployee(
	ec coverage.EmployeeCoverage,
	employeeID string,
	dayName string,
	date string,
	bizStart, bizEnd int,
	schedules schedule.Collection,
	att attendance.Collection,
	brk breaks.Collection,
) coverage.EmployeeCoverage {
	entry, ok := schedules[employeeID][dayName]
	if !ok || entry.IsZero() {
		return ec
	}
	schedStart, err := dateutil.MinuteOfDay(entry.Start)
	if err != nil {
		return ec
	}
	schedEnd, err := dateutil.MinuteOfDay(entry.End)
	if err != nil {
		return ec
	}
	ec.ScheduledMinutes = maxInt(0, schedEnd-schedStart)

	if _, ok := att[date][employeeID]; !ok {
		return ec
	}
	ec.Present = true

	overlapStart := maxInt(schedStart, bizStart)
	overlapEnd := minInt(schedEnd, bizEnd)
	if overlapStart >= overlapEnd {
		return ec
	}
	ec.OverlapMinutes = overlapEnd - overlapStart

	for _, b := range brk[date][employeeID] {
		if b.End == nil {
			continue
		}
		ec.BreakMinutes += int(b.End.Sub(b.Start).Minutes())
	}

	ec.CoverageMinutes = maxInt(0, ec.OverlapMinutes-ec.BreakMinutes)

	adherence := float64(ec.CoverageMinutes) / float64(bizEnd-bizStart) * 100
	ec.Adherence = clampPercent(adherence)

	return ec
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
