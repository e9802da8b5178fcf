package infraction

// Rule is a handbook rule an infraction can be issued against.
type Rule struct {
	Rule        string `json:"rule"`
	Section     string `json:"section"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

const (
	LevelMinor  = "minor"
	LevelMajor  = "major"
	LevelSevere = "severe"
)

// Rules is the static rule table keyed by rule code.
var Rules = map[string]Rule{
	"ATT-01": {
		Rule:        "Tardiness",
		Section:     "3.2",
		Description: "Reporting to work after the scheduled start time without prior notice.",
		Level:       LevelMinor,
	},
	"ATT-02": {
		Rule:        "Unreported absence",
		Section:     "3.1",
		Description: "Failing to report for a scheduled shift without notifying a supervisor (no call, no show).",
		Level:       LevelSevere,
	},
	"ATT-03": {
		Rule:        "Excessive break time",
		Section:     "3.4",
		Description: "Exceeding the permitted duration of rest or meal periods.",
		Level:       LevelMinor,
	},
	"ATT-04": {
		Rule:        "Early departure",
		Section:     "3.3",
		Description: "Leaving a scheduled shift before its end without supervisor approval.",
		Level:       LevelMinor,
	},
	"CON-01": {
		Rule:        "Insubordination",
		Section:     "4.1",
		Description: "Refusing to carry out a reasonable instruction from a supervisor.",
		Level:       LevelMajor,
	},
	"CON-02": {
		Rule:        "Unprofessional conduct",
		Section:     "4.2",
		Description: "Behavior toward clients or coworkers that falls below professional standards.",
		Level:       LevelMajor,
	},
	"CON-03": {
		Rule:        "Falsification of records",
		Section:     "4.5",
		Description: "Knowingly entering false information into attendance, break, or client records.",
		Level:       LevelSevere,
	},
	"SEC-01": {
		Rule:        "Credential sharing",
		Section:     "5.2",
		Description: "Sharing login credentials or marking attendance on behalf of another employee.",
		Level:       LevelSevere,
	},
	"SEC-02": {
		Rule:        "Confidentiality breach",
		Section:     "5.4",
		Description: "Disclosing client or employee information to unauthorized parties.",
		Level:       LevelSevere,
	},
}

// LookupRule returns the rule for a code; ok is false for unknown codes.
func LookupRule(code string) (Rule, bool) {
	rule, ok := Rules[code]
	return rule, ok
}
