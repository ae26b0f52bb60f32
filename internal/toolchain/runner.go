package toolchain

import (
	"context"
	"strings"
)

// Step names used in recipes.
const (
	StepCompile = "compile"
	StepRun     = "run"
)

// Command is a single external process invocation.
type Command struct {
	// Step labels the command within its recipe (compile or run)
	Step string

	// Name is the binary to execute
	Name string

	// Args are passed to the binary verbatim
	Args []string

	// Dir is the working directory; empty inherits the caller's
	Dir string
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner provides an abstraction over process execution for testability.
//
// Run blocks until the process exits. A process that cannot be started or
// that exits non-zero is reported as an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}
