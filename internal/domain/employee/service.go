package employee

import "context"

// Service defines business logic for employee management.
type Service interface {
	// Register creates a new employee account (admin action).
	Register(ctx context.Context, req RegisterRequest) (Response, error)

	// Get retrieves a single employee by ID.
	Get(ctx context.Context, employeeID string) (Response, error)

	// List retrieves all employees.
	List(ctx context.Context) (ListResponse, error)

	// SetBlocked blocks or unblocks an employee account.
	SetBlocked(ctx context.Context, employeeID string, blocked bool) (Response, error)

	// Delete removes an employee record (explicit admin action).
	Delete(ctx context.Context, employeeID string) error
}
