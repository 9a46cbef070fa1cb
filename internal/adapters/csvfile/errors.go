package csvfile

import "errors"

// Sentinel kinds for load failures.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrSchema         = errors.New("required column missing")
)
