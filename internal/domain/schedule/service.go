package schedule

import "context"

// Service defines business logic for employee week schedules.
type Service interface {
	// Get retrieves the employee's week schedule.
	Get(ctx context.Context, employeeID string) (WeekSchedule, error)

	// Save validates and fully overwrites the employee's week schedule.
	Save(ctx context.Context, employeeID string, week WeekSchedule) (WeekSchedule, error)

	// Delete removes the employee's week schedule.
	Delete(ctx context.Context, employeeID string) error
}
