package attendance

import "errors"

var (
	ErrAlreadyMarkedPresent = errors.New("attendance already recorded for today")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrAlreadyApproved      = errors.New("attendance record already approved")
)
