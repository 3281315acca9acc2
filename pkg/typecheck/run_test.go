//go:build integration

package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_Run_CapturesStderr(t *testing.T) {
	checker := NewChecker()

	output, err := checker.Run(RunParams{
		Command: "sh",
		Args:    []string{"-c", "echo 'diagnostic output' 1>&2"},
		WorkDir: ".",
	})
	assert.NoError(t, err)
	assert.Equal(t, "diagnostic output\n", output)
}

func TestChecker_Run_NonZeroExitReturnsOutput(t *testing.T) {
	checker := NewChecker()

	// A failing type check exits non-zero but still produced diagnostics
	output, err := checker.Run(RunParams{
		Command: "sh",
		Args:    []string{"-c", "echo 'src/a.ts(1,1): error' 1>&2; exit 2"},
		WorkDir: ".",
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "src/a.ts(1,1): error")
}

func TestChecker_Run_CommandNotFound(t *testing.T) {
	checker := NewChecker()

	_, err := checker.Run(RunParams{
		Command: "definitely-not-a-real-command",
		WorkDir: ".",
	})
	assert.ErrorIs(t, err, ErrCommandLaunch)
}

func TestChecker_Run_BadWorkDir(t *testing.T) {
	checker := NewChecker()

	_, err := checker.Run(RunParams{
		Command: "sh",
		Args:    []string{"-c", "true"},
		WorkDir: "/non/existent/directory",
	})
	assert.ErrorIs(t, err, ErrCommandLaunch)
}
