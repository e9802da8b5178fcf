package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("no schedule configured for employee")
	ErrInvalidDayName   = errors.New("invalid day name")
	ErrInvalidShift     = errors.New("shift start and end must be HH:MM with end after start")
)
