package engine

import (
	"context"
	"fmt"

	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/toolchain"
)

// StepError reports the recipe step that aborted an execution.
type StepError struct {
	Step    string
	Command toolchain.Command
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed (%s): %v", e.Step, e.Command.String(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Execute compiles and/or runs path. The build directory is created first;
// recipe steps then run in order from the workspace root and the first
// failing step stops the execution.
func (e *Engine) Execute(ctx context.Context, lang models.Language, path string) error {
	buildDir := e.ws.Abs(e.settings.BuildDir)
	if err := e.fs.MkdirAll(buildDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	recipe, err := toolchain.RecipeFor(lang, path, e.settings)
	if err != nil {
		return err
	}

	for _, cmd := range recipe {
		cmd.Dir = e.ws.RootPath
		e.logger.Debug("running step", "step", cmd.Step, "command", cmd.String(), "dir", cmd.Dir)

		if err := e.runner.Run(ctx, cmd); err != nil {
			return &StepError{Step: cmd.Step, Command: cmd, Err: err}
		}
	}

	return nil
}
