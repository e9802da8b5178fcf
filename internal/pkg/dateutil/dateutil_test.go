package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookbackStart_WithinLookback(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	start := LookbackStart(today, 30, cutoff)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestLookbackStart_FlooredAtCutoff(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	start := LookbackStart(today, 30, cutoff)

	assert.Equal(t, cutoff, start)
}

func TestDayName(t *testing.T) {
	// 2026-08-31 is a Monday
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", DayName(monday))
	assert.Equal(t, "sunday", DayName(monday.AddDate(0, 0, 6)))
}

func TestMinuteOfDay(t *testing.T) {
	m, err := MinuteOfDay("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 540, m)

	m, err = MinuteOfDay("17:30")
	require.NoError(t, err)
	assert.Equal(t, 1050, m)

	_, err = MinuteOfDay("9am")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 8, 4, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
}
