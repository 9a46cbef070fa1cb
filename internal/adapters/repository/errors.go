package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrNotLoaded    = errors.New("no dataset loaded")
	ErrNotProcessed = errors.New("dataset not processed")
)
