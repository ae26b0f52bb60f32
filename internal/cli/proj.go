package cli

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/tui/project"
	"github.com/spf13/cobra"
)

// ProjCommand handles the proj command
type ProjCommand struct {
	app *App
}

// NewProjCommand creates a new proj command
func NewProjCommand(app *App) *cobra.Command {
	cmd := &ProjCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "proj [<file> <project>]",
		Short: "Scaffold a project around an initial source file",
		Long: `Creates <project>/ with src/, target/ and a .gitignore excluding target,
plus an empty Cargo.toml for Rust, and writes the template of <file>'s
language to <project>/src/<file>.

Without arguments an interactive wizard asks for the language, the
project name and the file name.`,
		Example: `  lion proj main.go myapp
  lion proj main.rs crab
  lion proj app myapp --lang go
  lion proj`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts either no arguments or <file> <project>, received %d", len(args))
			}
			return nil
		},
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String(langFlag, "", "Language name or extension, overriding the file extension (e.g. rust, py)")

	return cobraCmd
}

// Run executes the proj command
func (c *ProjCommand) Run(cmd *cobra.Command, args []string) error {
	e, err := c.app.engine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	flow := project.NewFlow(e)

	var result *project.Result
	if len(args) == 0 {
		result, err = flow.Run()
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if result == nil {
			return nil
		}
	} else {
		file, name := args[0], args[1]
		lang, err := languageFor(cmd, file)
		if err != nil {
			return err
		}
		result, err = flow.Apply(project.Answers{
			Language:    lang,
			ProjectName: name,
			FileName:    file,
		})
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), project.RenderSuccess(result.Project))
	return nil
}
