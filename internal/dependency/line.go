package dependency

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
)

var _ Injector = (*LineInjector)(nil)

// LineInjector prepends a single declaration line (import or #include) to
// the source file. A missing source file starts from the language template.
type LineInjector struct {
	fs     filesystem.FileSystem
	lang   models.Language
	render func(models.Dependency) string
}

// NewLineInjector creates a LineInjector that renders declarations with render.
func NewLineInjector(fs filesystem.FileSystem, lang models.Language, render func(models.Dependency) string) *LineInjector {
	return &LineInjector{fs: fs, lang: lang, render: render}
}

// Inject writes "<declaration>\n<previous content>" back to sourcePath.
func (l *LineInjector) Inject(sourcePath string, dep models.Dependency) error {
	content, err := l.readOrTemplate(sourcePath)
	if err != nil {
		return err
	}

	updated := l.render(dep) + "\n" + content
	if err := l.fs.WriteFile(sourcePath, []byte(updated), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", sourcePath, err)
	}

	return nil
}

func (l *LineInjector) readOrTemplate(sourcePath string) (string, error) {
	if !l.fs.Exists(sourcePath) {
		return templates.For(l.lang)
	}

	data, err := l.fs.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}
	return string(data), nil
}
