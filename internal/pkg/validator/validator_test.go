package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:00"))
	assert.True(t, IsValidClockTime("09:00:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9:00"))
	assert.False(t, IsValidClockTime("09:60"))
	assert.False(t, IsValidClockTime(""))
}

func TestIsValidEmployeeID(t *testing.T) {
	assert.True(t, IsValidEmployeeID("emp-001"))
	assert.True(t, IsValidEmployeeID("jane.doe"))
	assert.False(t, IsValidEmployeeID("a"))
	assert.False(t, IsValidEmployeeID("has space"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-08-31")
	assert.True(t, ok)
	_, ok = IsValidDate("31-08-2026")
	assert.False(t, ok)
}
