package coaching

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
)

// Notice is the rendered coaching text plus the canonical incident dates that
// produced it. IncidentDates exactly reconstructs the dates that contributed
// to the violation, deduplicated, and is what permanent deletion later feeds
// into the ignored-incidents table.
type Notice struct {
	Content       string
	IncidentDates []string
}

type guidance struct {
	Label       string
	HandbookRef string
	Consequence string
}

var guidanceByCategory = map[violation.Category]guidance{
	violation.CategoryTardiness: {
		Label:       "Tardiness",
		HandbookRef: "Employee Handbook §3.2 — Punctuality and Schedule Adherence",
		Consequence: "Continued tardiness may result in formal disciplinary action up to and including termination.",
	},
	violation.CategoryOverBreak: {
		Label:       "Exceeding Break Time Limits",
		HandbookRef: "Employee Handbook §3.4 — Rest and Meal Periods",
		Consequence: "Repeatedly exceeding break limits may result in formal disciplinary action up to and including termination.",
	},
	violation.CategoryAbsence: {
		Label:       "Unreported Absence (No Call, No Show)",
		HandbookRef: "Employee Handbook §3.1 — Attendance and Absence Reporting",
		Consequence: "No-call no-show absences are a serious policy violation and may result in immediate termination.",
	},
}

// CategoryLabel returns the human-readable label for a violation category.
func CategoryLabel(category violation.Category) string {
	if g, ok := guidanceByCategory[category]; ok {
		return g.Label
	}
	return string(category)
}

// BuildNotice renders a violation into the fixed coaching-notice template.
func BuildNotice(v *violation.Violation, employeeName string) Notice {
	g, ok := guidanceByCategory[v.Category]
	if !ok {
		g = guidance{Label: string(v.Category)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EMPLOYEE COACHING NOTICE\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", employeeName)
	fmt.Fprintf(&b, "Date: %s\n", v.DetectedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Subject: %s\n\n", g.Label)
	fmt.Fprintf(&b, "A review of attendance records for the current period found %d incident(s):\n\n", v.Count)

	for _, inc := range v.Incidents {
		b.WriteString("  - ")
		b.WriteString(incidentLine(v.Category, inc))
		b.WriteString("\n")
	}

	if v.Category == violation.CategoryAbsence && v.ConsecutiveAbsences >= violation.SeriousRunLength {
		fmt.Fprintf(&b, "\nThis includes a run of %d consecutive scheduled days with no attendance, which is treated as a serious violation.\n", v.ConsecutiveAbsences)
	}
	if v.Category == violation.CategoryTardiness {
		fmt.Fprintf(&b, "\nTotal minutes late across the period: %d.\n", v.TotalMinutesLate)
	}

	fmt.Fprintf(&b, "\nReference: %s\n", g.HandbookRef)
	fmt.Fprintf(&b, "Consequence: %s\n", g.Consequence)

	return Notice{
		Content:       b.String(),
		IncidentDates: IncidentDates(v),
	}
}

func incidentLine(category violation.Category, inc violation.Incident) string {
	switch category {
	case violation.CategoryTardiness:
		return fmt.Sprintf("%s: clocked in at %s, %d minute(s) after the scheduled start of %s",
			inc.Date, inc.CheckIn, inc.MinutesLate, inc.ScheduledStart)
	case violation.CategoryOverBreak:
		return fmt.Sprintf("%s: %s lasted %d minute(s), exceeding the %d-minute limit",
			inc.Date, inc.BreakType, inc.DurationMinutes, inc.LimitMinutes)
	case violation.CategoryAbsence:
		return fmt.Sprintf("%s: scheduled to work, no attendance recorded (%s)", inc.Date, inc.Type)
	default:
		return inc.Date
	}
}

// IncidentDates returns the deduplicated normalized dates of a violation's
// incidents, in first-seen order.
func IncidentDates(v *violation.Violation) []string {
	seen := make(map[string]struct{}, len(v.Incidents))
	dates := make([]string, 0, len(v.Incidents))
	for _, inc := range v.Incidents {
		if _, ok := seen[inc.Date]; ok {
			continue
		}
		seen[inc.Date] = struct{}{}
		dates = append(dates, inc.Date)
	}
	return dates
}

var dateRegex = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

// ExtractDates pulls date-like substrings out of rendered notice text. It is
// the best-effort fallback for legacy logs created before incident dates were
// stored as structured metadata.
func ExtractDates(content string) []string {
	matches := dateRegex.FindAllString(content, -1)
	seen := make(map[string]struct{}, len(matches))
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, err := time.Parse("2006-01-02", m); err != nil {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		dates = append(dates, m)
	}
	return dates
}
