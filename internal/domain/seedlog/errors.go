package seedlog

import "errors"

// ErrInvalidInput indicates an entry is missing required fields.
var ErrInvalidInput = errors.New("invalid seed log entry")
