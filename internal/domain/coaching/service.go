package coaching

import "context"

// Service defines business logic for coaching logs, the pending-approval
// workflow, and permanent incident suppression.
type Service interface {
	// ListLogs retrieves coaching logs, optionally filtered by employee.
	ListLogs(ctx context.Context, employeeID string) (ListLogsResponse, error)

	// Acknowledge flips a log's acknowledged flag (one-way) with the
	// employee's signature and comment.
	Acknowledge(ctx context.Context, logID string, req AcknowledgeRequest) (Log, error)

	// ListPending retrieves detected violations awaiting review.
	ListPending(ctx context.Context) (ListPendingResponse, error)

	// Approve converts a pending item into a permanent coaching log, carrying
	// forward its incident dates and violation data, then removes it from the
	// pending list.
	Approve(ctx context.Context, pendingID string, issuedBy string) (Log, error)

	// Reject removes a pending item without creating a log. Its incidents
	// remain eligible for re-detection on the next scan.
	Reject(ctx context.Context, pendingID string) error

	// DeleteForever removes a coaching log and merges its incident dates into
	// the ignored-incidents table so they are never re-detected. Legacy logs
	// without structured dates fall back to free-text extraction.
	DeleteForever(ctx context.Context, logID string, deletedBy string) error

	// ClearIgnored empties the entire ignored-incidents table.
	ClearIgnored(ctx context.Context) error
}
