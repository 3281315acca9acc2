package typecheck

import "errors"

// Typecheck-specific error types.
var (
	ErrCommandLaunch = errors.New("failed to launch type-check command")
)
