package client

import "context"

// Service defines business logic for clients and coverage assignments.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Client, error)
	Get(ctx context.Context, clientID string) (Client, error)
	List(ctx context.Context) (ListResponse, error)
	Update(ctx context.Context, clientID string, req UpdateRequest) (Client, error)
	Delete(ctx context.Context, clientID string) error

	// Assign adds an employee to the client's coverage list, rejecting
	// duplicates.
	Assign(ctx context.Context, clientID string, employeeID string) error

	// Unassign removes an employee from the client's coverage list.
	Unassign(ctx context.Context, clientID string, employeeID string) error

	// Assigned lists employee IDs assigned to the client.
	Assigned(ctx context.Context, clientID string) ([]string, error)
}
