package infraction

// Infraction is a formal disciplinary record issued against a handbook rule.
// OccurrenceCount is 1 plus the number of prior infractions with the same
// (employeeId, ruleCode) pair, fixed at creation time.
type Infraction struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	RuleCode        string  `json:"ruleCode"`
	Rule            string  `json:"rule"`
	Section         string  `json:"section"`
	Description     string  `json:"description"`
	Level           string  `json:"level"`
	AdditionalNotes string  `json:"additionalNotes,omitempty"`
	OccurrenceCount int     `json:"occurrenceCount"`
	Date            string  `json:"date"`
	Acknowledged    bool    `json:"acknowledged"`
	Signature       *string `json:"signature"`
	Comment         string  `json:"comment"`
}
