package violation

import "context"

// ScanSummary reports the outcome of a full detection sweep.
type ScanSummary struct {
	EmployeesScanned int `json:"employeesScanned"`
	ViolationsFound  int `json:"violationsFound"`
	ProposalsCreated int `json:"proposalsCreated"`
}

// DetectorService runs the rule-based violation scan over attendance, breaks
// and schedules snapshots.
type DetectorService interface {
	// Detect evaluates one category for one employee. It returns nil when the
	// thresholds are not met; missing data degrades to nil, never an error.
	Detect(ctx context.Context, category Category, employeeID string) (*Violation, error)

	// ScanAll evaluates every category for every employee and appends a
	// pending-coaching proposal for each triggered violation. Categories
	// already pending for an employee are skipped so a proposal is never
	// duplicated while awaiting review.
	ScanAll(ctx context.Context, detectedBy string) (ScanSummary, error)
}
