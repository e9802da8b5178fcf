package coverage

import "errors"

// ErrNoBusinessHours is surfaced to the caller (rather than degrading to an
// empty report) because it represents a configuration gap that needs human
// correction.
var ErrNoBusinessHours = errors.New("client has no business hours for the requested day")
