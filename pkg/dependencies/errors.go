package dependencies

import "errors"

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrCheckerMissing  = errors.New("checker dependency is required but not set")
	ErrRewriterMissing = errors.New("rewriter dependency is required but not set")
	ErrConfigMissing   = errors.New("config dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
)
