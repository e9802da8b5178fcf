package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// MarkPresent records the employee's attendance for today. One record per
	// employee per day.
	MarkPresent(ctx context.Context, req MarkPresentRequest) (Response, error)

	// Approve flips an attendance record's approved flag (one-way, admin).
	Approve(ctx context.Context, date string, employeeID string) (Response, error)

	// ListByDate retrieves all attendance records for a calendar day.
	ListByDate(ctx context.Context, date string) (ListResponse, error)
}
