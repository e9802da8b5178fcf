package coaching

import "errors"

var (
	ErrPendingNotFound     = errors.New("pending coaching item not found")
	ErrLogNotFound         = errors.New("coaching log not found")
	ErrAlreadyAcknowledged = errors.New("coaching log already acknowledged")
	ErrSignatureRequired   = errors.New("signature is required to acknowledge")
)
