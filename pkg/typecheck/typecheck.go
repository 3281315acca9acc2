// Package typecheck provides execution of the external type-checking command.
package typecheck

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=typecheck.go -destination=mocks/typecheck.gen.go -package=mocks

// Checker interface provides type-check command execution capabilities.
type Checker interface {
	// Run executes the type-check command and returns its standard error stream.
	// A non-zero exit caused by reported diagnostics is not an error.
	Run(params RunParams) (string, error)
}

// RunParams contains parameters for running the type-check command.
type RunParams struct {
	Command string
	Args    []string
	WorkDir string
}

type realChecker struct {
	// No fields needed for basic command execution
}

// NewChecker creates a new Checker instance.
func NewChecker() Checker {
	return &realChecker{}
}
