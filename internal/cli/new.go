package cli

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/tui"
	"github.com/spf13/cobra"
)

// NewCommand handles the new command
type NewCommand struct {
	app *App
}

// NewNewCommand creates a new new command
func NewNewCommand(app *App) *cobra.Command {
	cmd := &NewCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "new <file> [dependency]",
		Short: "Create a source file from the language template",
		Long: `Writes the hello-world template of the file's language to <file>,
replacing any existing content. When a dependency is given it is injected
right away, exactly like 'lion dep'.`,
		Example: `  lion new main.py
  lion new main.py numpy
  lion new main.rs serde
  lion new hello --lang python`,
		Args: cobra.RangeArgs(1, 2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String(langFlag, "", "Language name or extension, overriding the file extension (e.g. rust, py)")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	path := args[0]
	dependency := ""
	if len(args) == 2 {
		dependency = args[1]
	}

	e, err := c.app.engine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lang, err := languageFor(cmd, path)
	if err != nil {
		return err
	}
	if err := e.Create(path, lang, dependency); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render(fmt.Sprintf("✓ Created %s (%s)", path, lang.DisplayName())))
	return nil
}
