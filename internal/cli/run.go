package cli

import (
	"github.com/jakoblorz/lion/internal/models"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	app *App
}

// NewRunCommand creates a new run command
func NewRunCommand(app *App) *cobra.Command {
	cmd := &RunCommand{app: app}

	return &cobra.Command{
		Use:   "run <file>",
		Short: "Compile and run a source file",
		Long: `Compiles <file> into the build directory when its language needs it
and runs the result. The program inherits the terminal. The first failing
step stops the run and lion exits non-zero.`,
		Example: `  lion run main.py
  lion run main.c`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}
}

// Run executes the run command
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
	path := args[0]

	e, err := c.app.engine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return e.Execute(cmd.Context(), models.ResolveFile(path), path)
}
