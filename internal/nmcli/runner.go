package nmcli

import (
	"bytes"
	"errors"
	"os/exec"
)

// RunResult captures a finished external command.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes an external command and waits for it to complete.
//
// A command that runs and exits non-zero is reported through ExitCode, not
// through the error. The error is reserved for failing to launch the command
// at all.
type Runner interface {
	Run(name string, args ...string) (RunResult, error)
}

// execRunner is the production Runner over os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) (RunResult, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return RunResult{}, err
	}

	return RunResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
