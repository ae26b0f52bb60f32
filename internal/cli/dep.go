package cli

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/tui"
	"github.com/spf13/cobra"
)

// DepCommand handles the dep command
type DepCommand struct {
	app *App
}

// NewDepCommand creates a new dep command
func NewDepCommand(app *App) *cobra.Command {
	cmd := &DepCommand{app: app}

	return &cobra.Command{
		Use:   "dep <file> <dependency>",
		Short: "Declare a dependency for a source file",
		Long: `Declares <dependency> for <file>:

  Python  prepends "import <dependency>"
  C++     prepends #include "<dependency>/<dependency>.h"
  Rust    adds <dependency> = "*" below [dependencies] in the nearest Cargo.toml

WARNING: for Rust the source file is reset to the template after the
manifest is updated. Any edits to <file> are lost.

A Cargo.toml without a [dependencies] section is rejected and left
untouched. C, Go and Java files are not supported and are left unchanged.`,
		Example: `  lion dep main.py requests
  lion dep main.cpp fmt
  lion dep src/main.rs serde`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}
}

// Run executes the dep command
func (c *DepCommand) Run(cmd *cobra.Command, args []string) error {
	path, dependency := args[0], args[1]

	e, err := c.app.engine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lang := models.ResolveFile(path)
	if err := e.Inject(lang, path, dependency); err != nil {
		return err
	}

	if lang.Injection() != models.InjectionNone {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render(fmt.Sprintf("✓ Added %s to %s", dependency, path)))
	}
	return nil
}
