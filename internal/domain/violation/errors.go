package violation

import "errors"

var ErrUnknownCategory = errors.New("unknown violation category")
