package schedule

import (
	"context"
	"fmt"

	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/dateutil"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.Repository
	employeeRepo employee.Repository
}

func NewScheduleService(scheduleRepo schedule.Repository, employeeRepo employee.Repository) schedule.Service {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Get implements schedule.Service.
func (s *ScheduleServiceImpl) Get(ctx context.Context, employeeID string) (schedule.WeekSchedule, error) {
	schedules, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	week, ok := schedules[employeeID]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	return week, nil
}

// Save implements schedule.Service. The week is overwritten wholesale; days
// missing from the request are unscheduled.
func (s *ScheduleServiceImpl) Save(ctx context.Context, employeeID string, week schedule.WeekSchedule) (schedule.WeekSchedule, error) {
	employees, err := s.employeeRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := employees[employeeID]; !ok {
		return nil, employee.ErrEmployeeNotFound
	}

	for day, hours := range week {
		if !dateutil.IsValidDayName(day) {
			return nil, fmt.Errorf("%w: %q", schedule.ErrInvalidDayName, day)
		}
		if hours.IsZero() {
			continue
		}
		if !validator.IsValidClockTime(hours.Start) || !validator.IsValidClockTime(hours.End) {
			return nil, fmt.Errorf("%w: %s", schedule.ErrInvalidShift, day)
		}
		startMin, _ := dateutil.MinuteOfDay(hours.Start)
		endMin, _ := dateutil.MinuteOfDay(hours.End)
		if endMin <= startMin {
			return nil, fmt.Errorf("%w: %s", schedule.ErrInvalidShift, day)
		}
	}

	schedules, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	if schedules == nil {
		schedules = make(schedule.Collection)
	}
	schedules[employeeID] = week

	if err := s.scheduleRepo.Replace(ctx, schedules); err != nil {
		return nil, fmt.Errorf("failed to save schedules: %w", err)
	}
	return week, nil
}

// Delete implements schedule.Service.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, employeeID string) error {
	schedules, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	if _, ok := schedules[employeeID]; !ok {
		return schedule.ErrScheduleNotFound
	}

	delete(schedules, employeeID)
	if err := s.scheduleRepo.Replace(ctx, schedules); err != nil {
		return fmt.Errorf("failed to save schedules: %w", err)
	}
	return nil
}
