package coaching

import (
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

// Log is a permanent coaching record. Acknowledged flips false to true exactly
// once, accompanied by a signature and comment.
type Log struct {
	ID            string               `json:"id"`
	EmployeeID    string               `json:"employeeId"`
	Content       string               `json:"content"`
	Category      violation.Category   `json:"category"`
	Date          string               `json:"date"`
	Acknowledged  bool                 `json:"acknowledged"`
	Signature     *string              `json:"signature"`
	Comment       string               `json:"comment"`
	IssuedBy      string               `json:"issuedBy"`
	IncidentDates []string             `json:"incidentDates,omitempty"`
	ViolationData *violation.Violation `json:"violationData,omitempty"`
}

// Pending is a detected violation awaiting human review. It terminates either
// approved (converted into a Log and removed) or rejected (removed with
// nothing recorded, leaving its incidents eligible for re-detection).
type Pending struct {
	ID            string               `json:"id"`
	EmployeeID    string               `json:"employeeId"`
	EmployeeName  string               `json:"employeeName"`
	Content       string               `json:"content"`
	Category      violation.Category   `json:"category"`
	IncidentDates []string             `json:"incidentDates"`
	ViolationData *violation.Violation `json:"violationData,omitempty"`
	DetectedAt    string               `json:"detectedAt"`
	DetectedBy    string               `json:"detectedBy"`
}

// IgnoredRecord permanently suppresses the listed dates for one employee and
// category. Cleared only by the bulk clear operation.
type IgnoredRecord struct {
	Dates     []string `json:"dates"`
	DeletedAt string   `json:"deletedAt"`
	DeletedBy string   `json:"deletedBy"`
}

// IgnoredCollection is the full ignored-incidents document, keyed by employee
// ID then category.
type IgnoredCollection map[string]map[violation.Category]IgnoredRecord

// IsSuppressed reports whether a date is permanently suppressed for the
// employee and category. It satisfies violation.SuppressionFunc.
func (c IgnoredCollection) IsSuppressed(employeeID string, category violation.Category, date string) bool {
	record, ok := c[employeeID][category]
	if !ok {
		return false
	}
	for _, d := range record.Dates {
		if d == date {
			return true
		}
	}
	return false
}
