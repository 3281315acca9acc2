// Package dependencies provides a centralized dependency container for the
// tsfix application. It groups related dependencies together and provides a
// fluent API for configuration.
package dependencies

import (
	"tsfix/pkg/config"
	"tsfix/pkg/fs"
	"tsfix/pkg/logger"
	"tsfix/pkg/rewrite"
	"tsfix/pkg/typecheck"
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Checker  typecheck.Checker
	Rewriter rewrite.Rewriter
	Config   config.Manager
	Logger   logger.Logger
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	filesystem := fs.NewFS()

	return &Dependencies{
		FS:       filesystem,
		Checker:  typecheck.NewChecker(),
		Rewriter: rewrite.NewRewriter(filesystem),
		Config:   config.NewManager(),
		Logger:   logger.NewNoopLogger(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithChecker sets the type checker and returns the instance for chaining.
func (d *Dependencies) WithChecker(checker typecheck.Checker) *Dependencies {
	d.Checker = checker
	return d
}

// WithRewriter sets the rewriter and returns the instance for chaining.
func (d *Dependencies) WithRewriter(rewriter rewrite.Rewriter) *Dependencies {
	d.Rewriter = rewriter
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Checker == nil {
		return ErrCheckerMissing
	}
	if d.Rewriter == nil {
		return ErrRewriterMissing
	}
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	return nil
}
