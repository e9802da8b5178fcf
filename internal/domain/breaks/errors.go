package breaks

import "errors"

var (
	ErrInvalidBreakType = errors.New("invalid break type")
	ErrBreakInProgress  = errors.New("a break is already in progress")
	ErrNoOpenBreak      = errors.New("no break in progress")
	ErrBreakNotFound    = errors.New("break entry not found")
)
