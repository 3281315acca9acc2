package typecheck

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Run executes the type-check command and returns its standard error stream.
// A failing type check exits non-zero; that is the productive case and the
// captured output is returned as-is. Only a failure to launch the command
// (not found, bad working directory) is reported as an error.
func (c *realChecker) Run(params RunParams) (string, error) {
	cmd := exec.Command(params.Command, params.Args...)
	cmd.Dir = params.WorkDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stderr.String(), nil
		}
		return "", fmt.Errorf("%w: %v (command: %s)", ErrCommandLaunch, err, params.Command)
	}

	return stderr.String(), nil
}
