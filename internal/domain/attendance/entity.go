package attendance

import "time"

// Record is one employee's attendance mark for one calendar day. Approved
// flips false to true exactly once, by an admin action.
type Record struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Approved bool      `json:"approved"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

const StatusPresent = "present"

// DayRecords maps employee ID to that day's record.
type DayRecords map[string]Record

// Collection is the full attendance document, keyed by calendar-day string
// (YYYY-MM-DD) then employee ID.
type Collection map[string]DayRecords
