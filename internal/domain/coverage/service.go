package coverage

import "context"

// Service computes client staffing coverage and adherence.
type Service interface {
	// ComputeCoverage builds the coverage report for a client on a calendar
	// day. Missing schedules or attendance degrade to zero coverage; a
	// missing business-hours entry returns ErrNoBusinessHours.
	ComputeCoverage(ctx context.Context, clientID string, date string) (Report, error)
}
