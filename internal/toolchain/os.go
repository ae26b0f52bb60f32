package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

var _ Runner = (*OSRunner)(nil)

// OSRunner implements Runner by spawning real processes. The child shares
// the given stdio streams so compiler diagnostics and program output reach
// the terminal directly.
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner creates an OSRunner wired to the process's own stdio.
func NewOSRunner() *OSRunner {
	return &OSRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes cmd and waits for it to exit.
func (r *OSRunner) Run(ctx context.Context, cmd Command) error {
	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir
	execCmd.Stdin = r.Stdin
	execCmd.Stdout = r.Stdout
	execCmd.Stderr = r.Stderr

	if err := execCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d: %w", cmd.Name, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to start %s: %w", cmd.Name, err)
	}

	return nil
}
