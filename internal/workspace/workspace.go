package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
)

// Workspace is the directory lion was invoked from. Build output and
// manifests that cannot be found next to a source file live here.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{fs: fs}
}

// Detect records the current working directory as the workspace root.
func (w *Workspace) Detect() error {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	w.RootPath = filepath.Clean(cwd)
	return nil
}

// Abs resolves path against the workspace root.
func (w *Workspace) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(w.RootPath, path)
}

// ManifestPath locates the manifest governing sourcePath: the nearest
// Cargo.toml between the source file's directory and the workspace root,
// or <root>/Cargo.toml when none exists yet or the source file lies
// outside the workspace.
func (w *Workspace) ManifestPath(sourcePath string) string {
	startDir := filepath.Dir(w.Abs(sourcePath))
	if found, ok := findFileUp(w.fs, startDir, w.RootPath, models.ManifestFileName); ok {
		return found
	}
	return filepath.Join(w.RootPath, models.ManifestFileName)
}
