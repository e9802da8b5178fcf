package violation

import "time"

// Category identifies a violation type detected by the auto-coaching scan.
type Category string

const (
	CategoryTardiness Category = "tardiness"
	CategoryOverBreak Category = "over_break"
	CategoryAbsence   Category = "absence"
)

// Categories lists every detectable category in scan order.
var Categories = []Category{CategoryTardiness, CategoryOverBreak, CategoryAbsence}

// Detection thresholds. Tardiness triggers on either condition alone;
// absence triggers on any unsuppressed incident.
const (
	TardyCountThreshold     = 3
	TardyMinutesThreshold   = 30
	OverBreakCountThreshold = 3
	ConsecutiveGapDays      = 3
	SeriousRunLength        = 3
)

// AbsenceTypeNCNS marks a scheduled day with no attendance record.
const AbsenceTypeNCNS = "NCNS"

// Incident is a single dated occurrence contributing to a violation. Only the
// fields relevant to the category are populated.
type Incident struct {
	Date string `json:"date"`

	// Tardiness
	MinutesLate    int    `json:"minutesLate,omitempty"`
	CheckIn        string `json:"checkIn,omitempty"`
	ScheduledStart string `json:"scheduledStart,omitempty"`

	// Over-break
	BreakType       string `json:"breakType,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	LimitMinutes    int    `json:"limitMinutes,omitempty"`

	// Absence
	Type string `json:"type,omitempty"`
}

// Violation is a triggered detection result for one employee and category.
type Violation struct {
	Category   Category   `json:"category"`
	EmployeeID string     `json:"employeeId"`
	Count      int        `json:"count"`
	Incidents  []Incident `json:"incidents"`
	DetectedAt time.Time  `json:"detectedAt"`

	// Tardiness
	TotalMinutesLate int `json:"totalMinutesLate,omitempty"`

	// Absence
	ConsecutiveAbsences int  `json:"consecutiveAbsences,omitempty"`
	Serious             bool `json:"serious,omitempty"`
}

// SuppressionFunc reports whether an incident date is permanently suppressed
// for an employee and category. Suppressed incidents are dropped before any
// threshold evaluation.
type SuppressionFunc func(employeeID string, category Category, date string) bool

// NoSuppression is the predicate that suppresses nothing.
func NoSuppression(string, Category, string) bool { return false }
