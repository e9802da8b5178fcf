// Package dateutil holds the calendar helpers shared by the violation
// detector and the coverage calculator.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const DayFormat = "2006-01-02"

// LookbackStart returns the effective start of the detection window:
// lookbackDays before today, floored at the global cutoff date.
func LookbackStart(today time.Time, lookbackDays int, cutoff time.Time) time.Time {
	start := today.AddDate(0, 0, -lookbackDays)
	if start.Before(cutoff) {
		return cutoff
	}
	return start
}

// DayName returns the lowercase weekday name ("monday".."sunday") used as the
// key in schedule entries and client business hours.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ValidDayNames lists the accepted schedule keys in week order.
var ValidDayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsValidDayName reports whether name is one of the seven weekday keys.
func IsValidDayName(name string) bool {
	for _, d := range ValidDayNames {
		if d == name {
			return true
		}
	}
	return false
}

// ParseDay parses a YYYY-MM-DD calendar-day string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// MinuteOfDay parses a clock string ("15:04" or "15:04:05") and returns the
// minute offset from midnight.
func MinuteOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q, expected HH:MM or HH:MM:SS: %w", clock, err)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time-of-day component.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
