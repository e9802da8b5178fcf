package breaks

import "context"

// Service defines business logic for break tracking.
type Service interface {
	// Start appends a new in-progress break entry for the employee today.
	Start(ctx context.Context, req StartRequest) (Response, error)

	// End closes the employee's open break. The end timestamp is set exactly
	// once and never unset.
	End(ctx context.Context, employeeID string) (Response, error)

	// Approve flips a break entry's approved flag (one-way, admin).
	Approve(ctx context.Context, date string, employeeID string, index int) (Response, error)

	// ListByDate retrieves all break entries for a calendar day.
	ListByDate(ctx context.Context, date string) (ListResponse, error)
}
