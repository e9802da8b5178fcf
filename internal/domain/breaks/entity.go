package breaks

import "time"

type BreakType string

const (
	TypeBreak1   BreakType = "break1"
	TypeBreak2   BreakType = "break2"
	TypeLunch    BreakType = "lunch"
	TypeRestroom BreakType = "rr"
)

var TypeValues = []string{
	string(TypeBreak1),
	string(TypeBreak2),
	string(TypeLunch),
	string(TypeRestroom),
}

// limits holds the per-type duration limit in minutes. Restroom breaks carry
// no limit and are never flagged by the detector.
var limits = map[BreakType]int{
	TypeBreak1: 15,
	TypeBreak2: 15,
	TypeLunch:  60,
}

// LimitMinutes returns the duration limit for a break type. ok is false for
// types without a limit.
func LimitMinutes(t BreakType) (int, bool) {
	limit, ok := limits[t]
	return limit, ok
}

// Entry is one logged break. End transitions nil to a timestamp exactly once;
// an entry with a nil End is still in progress.
type Entry struct {
	Type     BreakType  `json:"type"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
	Approved bool       `json:"approved"`
}

// DayEntries maps employee ID to that day's ordered break list.
type DayEntries map[string][]Entry

// Collection is the full breaks document, keyed by calendar-day string then
// employee ID.
type Collection map[string]DayEntries
