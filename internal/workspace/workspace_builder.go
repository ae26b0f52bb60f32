package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
)

// WorkspaceBuilder helps create test workspaces
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder rooted at root, which
// also becomes the mock working directory.
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

// AddSource adds a source file with the given content.
func (wb *WorkspaceBuilder) AddSource(path, content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, path), []byte(content))
	return wb
}

// AddTemplateSource adds a source file holding the default template of its language.
func (wb *WorkspaceBuilder) AddTemplateSource(path string) *WorkspaceBuilder {
	return wb.AddSource(path, templates.MustFor(models.ResolveFile(path)))
}

// AddManifest adds a Cargo.toml in dir (relative to the root) with content.
func (wb *WorkspaceBuilder) AddManifest(dir, content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, dir, models.ManifestFileName), []byte(content))
	return wb
}

// AddDir adds an empty directory.
func (wb *WorkspaceBuilder) AddDir(path string) *WorkspaceBuilder {
	wb.fs.AddDir(filepath.Join(wb.root, path))
	return wb
}

// Build returns the mock filesystem
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	return wb.fs
}
