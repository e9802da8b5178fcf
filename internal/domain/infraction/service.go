package infraction

import "context"

// Service defines business logic for infraction records.
type Service interface {
	// Post issues an infraction against a handbook rule, computing the
	// occurrence count for the (employee, rule) pair at creation time.
	Post(ctx context.Context, req PostRequest) (Infraction, error)

	// List retrieves infractions, optionally filtered by employee.
	List(ctx context.Context, employeeID string) (ListResponse, error)

	// Acknowledge flips an infraction's acknowledged flag (one-way) with the
	// employee's signature and comment.
	Acknowledge(ctx context.Context, id string, req AcknowledgeRequest) (Infraction, error)
}
