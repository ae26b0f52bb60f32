package dependency

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
	"github.com/jakoblorz/lion/internal/workspace"
)

var _ Injector = (*ManifestInjector)(nil)

// AddToManifest inserts dep directly below the first [dependencies] header
// of content, ahead of any existing entries, and ensures the result ends
// with a newline. The header is never added to a manifest that lacks it.
func AddToManifest(content string, dep models.Dependency) (string, error) {
	before, after, found := strings.Cut(content, models.DependenciesHeader)
	if !found {
		return "", models.ErrMalformedManifest
	}

	updated := before + models.DependenciesHeader + "\n" + dep.ManifestEntry() + after
	if !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	return updated, nil
}

// ManifestInjector records dependencies in Cargo.toml.
//
// Injection resets the source file to the language template once the
// manifest is written. This is intentional: manifest injection is meant to
// run right after `lion new`, before the file holds real edits.
type ManifestInjector struct {
	fs   filesystem.FileSystem
	ws   *workspace.Workspace
	lang models.Language
}

// NewManifestInjector creates a new ManifestInjector
func NewManifestInjector(fs filesystem.FileSystem, ws *workspace.Workspace, lang models.Language) *ManifestInjector {
	return &ManifestInjector{fs: fs, ws: ws, lang: lang}
}

// Inject adds dep to the manifest governing sourcePath, creating the
// manifest with only the section header when it does not exist.
func (m *ManifestInjector) Inject(sourcePath string, dep models.Dependency) error {
	manifestPath := m.ws.ManifestPath(sourcePath)

	content := models.DependenciesHeader
	if m.fs.Exists(manifestPath) {
		data, err := m.fs.ReadFile(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", manifestPath, err)
		}
		content = string(data)
	}

	updated, err := AddToManifest(content, dep)
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	if err := m.fs.WriteFile(manifestPath, []byte(updated), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	body, err := templates.For(m.lang)
	if err != nil {
		return err
	}
	if err := m.fs.WriteFile(sourcePath, []byte(body), filePerm); err != nil {
		return fmt.Errorf("failed to reset %s: %w", sourcePath, err)
	}

	return nil
}

// Path returns the manifest that Inject would modify for sourcePath.
func (m *ManifestInjector) Path(sourcePath string) string {
	return m.ws.ManifestPath(sourcePath)
}
