package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jakoblorz/lion/internal/config"
	"github.com/jakoblorz/lion/internal/engine"
	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/toolchain"
	"github.com/jakoblorz/lion/internal/tui"
	"github.com/spf13/cobra"
)

const (
	configFlag  = "config"
	verboseFlag = "verbose"
	langFlag    = "lang"
)

// App carries the dependencies shared by every command.
type App struct {
	fs     filesystem.FileSystem
	runner toolchain.Runner

	cfg    *config.Config
	logger *slog.Logger
}

// Option configures the root command.
type Option func(*App)

// WithConfig skips config file and environment loading.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.cfg = cfg
	}
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, runner toolchain.Runner, opts ...Option) *cobra.Command {
	app := &App{fs: fs, runner: runner}
	for _, opt := range opts {
		opt(app)
	}

	rootCmd := &cobra.Command{
		Use:   "lion",
		Short: "Create, extend and run single-file programs",
		Long: `lion creates source files from templates, declares dependencies in them,
compiles and runs them, and scaffolds small projects.

Supported languages: C, C++, Rust, Go, Java and Python. The language is
picked from the file extension.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String(configFlag, "", "Path to a config file (default: .lion.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Log every external command")

	rootCmd.AddCommand(NewNewCommand(app))
	rootCmd.AddCommand(NewDepCommand(app))
	rootCmd.AddCommand(NewRunCommand(app))
	rootCmd.AddCommand(NewProjCommand(app))
	rootCmd.AddCommand(NewLangsCommand(app))

	return rootCmd
}

// setup loads configuration and builds the logger.
func (a *App) setup(cmd *cobra.Command) error {
	if a.cfg == nil {
		path, _ := cmd.Flags().GetString(configFlag)

		cwd, err := a.fs.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg, err := config.Load(path, cwd)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	for _, w := range a.cfg.Validate() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("warning: ")+w)
	}

	level := a.cfg.Log.Level
	if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
		level = "debug"
	}
	a.logger = newLogger(level, a.cfg.Log.Format, cmd.ErrOrStderr())

	return nil
}

// engine builds an Engine whose diagnostics go to the command's stderr.
func (a *App) engine(diag io.Writer) (*engine.Engine, error) {
	e, err := engine.New(a.fs, a.runner,
		engine.WithSettings(a.cfg.Settings()),
		engine.WithLogger(a.logger),
		engine.WithDiagnostics(diag),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to detect workspace: %w", err)
	}
	return e, nil
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := toolchain.NewOSRunner()

	rootCmd := NewRootCommand(fs, runner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), tui.ErrorStyle.Render("error: ")+err.Error())
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// languageFor returns the language named by --lang, or the language of
// path's extension when the flag is not set.
func languageFor(cmd *cobra.Command, path string) (models.Language, error) {
	name, _ := cmd.Flags().GetString(langFlag)
	if name == "" {
		return models.ResolveFile(path), nil
	}

	lang := models.ParseLanguage(name)
	if !lang.IsKnown() {
		return models.LanguageUnknown, fmt.Errorf("unknown language %q: %w", name, models.ErrUnsupportedLanguage)
	}
	return lang, nil
}
