package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
	"github.com/jakoblorz/lion/internal/toolchain"
	"github.com/jakoblorz/lion/internal/workspace"
)

const (
	filePerm = 0644
	dirPerm  = 0755
)

// Engine creates source files from templates, injects dependencies, runs
// files through their toolchain and scaffolds projects. All paths are
// resolved against the workspace root; the process working directory is
// never changed.
type Engine struct {
	fs       filesystem.FileSystem
	runner   toolchain.Runner
	ws       *workspace.Workspace
	settings toolchain.Settings
	logger   *slog.Logger
	diag     io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDiagnostics sets where non-fatal diagnostics are printed.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.diag = w
		}
	}
}

// WithSettings overrides binaries, build directory and platform.
func WithSettings(s toolchain.Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// New creates an Engine rooted at the filesystem's working directory.
func New(fs filesystem.FileSystem, runner toolchain.Runner, opts ...Option) (*Engine, error) {
	ws := workspace.New(fs)
	if err := ws.Detect(); err != nil {
		return nil, err
	}

	e := &Engine{
		fs:       fs,
		runner:   runner,
		ws:       ws,
		settings: toolchain.DefaultSettings(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		diag:     io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Create writes the language template to path, replacing whatever was
// there. A non-empty dependency is injected into the fresh file.
func (e *Engine) Create(path string, lang models.Language, dependency string) error {
	content, err := templates.For(lang)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := e.fs.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.logger.Debug("created source file", "path", path, "language", lang.String())

	if dependency == "" {
		return nil
	}
	return e.Inject(lang, path, dependency)
}

// warn prints a non-fatal diagnostic. The log record carries the context
// at debug level so the notice is shown once by default.
func (e *Engine) warn(msg string, args ...any) {
	fmt.Fprintln(e.diag, msg)
	e.logger.Debug(msg, args...)
}
