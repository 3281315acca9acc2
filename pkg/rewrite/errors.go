package rewrite

import "errors"

// Rewrite-specific error types.
var (
	ErrEmptyIdentifier = errors.New("identifier cannot be empty")
	ErrFileNotFound    = errors.New("source file not found")
)
