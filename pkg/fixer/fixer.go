// Package fixer orchestrates the collect-parse-fix cycle: run the type
// checker, parse unused-identifier diagnostics, and rewrite the affected
// source files.
package fixer

import (
	"fmt"

	"tsfix/pkg/config"
	"tsfix/pkg/dependencies"
	"tsfix/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fixer.go -destination=mocks/fixer.gen.go -package=mocks

// Fixer interface provides the unused-import cleanup cycle.
type Fixer interface {
	// Fix runs one full collect-parse-fix cycle and returns a summary.
	Fix(opts ...FixOpts) (Summary, error)

	// SetLogger sets the logger for this Fixer instance.
	SetLogger(logger logger.Logger)
}

// FixOpts contains optional parameters for a fix cycle.
type FixOpts struct {
	// DryRun computes and reports edits without writing any file.
	DryRun bool
	// Verbose logs a line diff for every modified file.
	Verbose bool
}

// Summary reports what a fix cycle found and changed.
type Summary struct {
	// Found is the number of unused-identifier diagnostics parsed.
	Found int
	// Fixed is the number of identifiers actually removed.
	Fixed int
}

// NewFixerParams contains parameters for creating a new Fixer instance.
type NewFixerParams struct {
	Dependencies *dependencies.Dependencies
	Config       *config.Config
}

type realFixer struct {
	deps   *dependencies.Dependencies
	config *config.Config
}

// NewFixer creates a new Fixer instance.
func NewFixer(params NewFixerParams) (Fixer, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	cfg := params.Config
	if cfg == nil {
		cfg = deps.Config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &realFixer{
		deps:   deps,
		config: cfg,
	}, nil
}

// SetLogger sets the logger for this Fixer instance.
func (f *realFixer) SetLogger(logger logger.Logger) {
	f.deps.Logger = logger
}

// logf logs a formatted message using the current logger.
func (f *realFixer) logf(msg string, args ...interface{}) {
	if f.deps.Logger != nil {
		f.deps.Logger.Logf(msg, args...)
	}
}
