package coverage

// EmployeeCoverage is one assigned employee's contribution to a client's
// business-hours window on a given day.
type EmployeeCoverage struct {
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName,omitempty"`
	Present          bool    `json:"present"`
	ScheduledMinutes int     `json:"scheduledMinutes"`
	OverlapMinutes   int     `json:"overlapMinutes"`
	BreakMinutes     int     `json:"breakMinutes"`
	CoverageMinutes  int     `json:"coverageMinutes"`
	Adherence        float64 `json:"adherence"`
}

// Report aggregates per-employee coverage against a single business-hours
// window. TotalCoverage sums minutes across employees, so it exceeds 100 when
// multiple employees overlap the same window; that is redundancy, not an
// error.
type Report struct {
	ClientID        string             `json:"clientId"`
	ClientName      string             `json:"clientName"`
	Date            string             `json:"date"`
	DayName         string             `json:"dayName"`
	BusinessStart   string             `json:"businessStart"`
	BusinessEnd     string             `json:"businessEnd"`
	BusinessMinutes int                `json:"businessMinutes"`
	Employees       []EmployeeCoverage `json:"employees"`
	TotalCoverage   float64            `json:"totalCoverage"`
}
