package insight

import "errors"

// Sentinel kinds for insight query errors. Callers map these to boundary
// statuses with errors.Is.
var (
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrMissingParameter = errors.New("missing parameter")
	ErrOutOfRange       = errors.New("out of range")
)
