package schedule

// DayHours is a scheduled shift for one weekday, clock strings in HH:MM.
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsZero reports whether the entry is empty (no shift scheduled).
func (d DayHours) IsZero() bool {
	return d.Start == "" && d.End == ""
}

// WeekSchedule maps lowercase day names ("monday".."sunday") to shift hours.
// Only scheduled days appear.
type WeekSchedule map[string]DayHours

// Collection is the full schedules document, keyed by employee ID. An
// employee's week schedule is fully overwritten (not merged) on each save.
type Collection map[string]WeekSchedule
