package client

import "github.com/shiftwise/workforce-backend-go/internal/domain/schedule"

// Client is a serviced account with per-weekday business hours.
type Client struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	BusinessHours map[string]schedule.DayHours `json:"businessHours,omitempty"`
}

// Collection is the full clients document, keyed by client ID.
type Collection map[string]Client

// Assignments maps client ID to the list of assigned employee IDs, no
// duplicates.
type Assignments map[string][]string
