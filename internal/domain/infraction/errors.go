package infraction

import "errors"

var (
	ErrInvalidRule         = errors.New("unknown infraction rule code")
	ErrInfractionNotFound  = errors.New("infraction not found")
	ErrAlreadyAcknowledged = errors.New("infraction already acknowledged")
)
