package dependency

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/workspace"
)

const filePerm = 0644

// Injector declares a dependency for a source file, mutating the file
// and/or the project manifest.
type Injector interface {
	Inject(sourcePath string, dep models.Dependency) error
}

// NewInjector returns the injection strategy for lang. Languages without a
// strategy yield models.ErrInjectionUnsupported.
func NewInjector(fs filesystem.FileSystem, ws *workspace.Workspace, lang models.Language) (Injector, error) {
	switch lang.Injection() {
	case models.InjectionImportLine:
		return NewLineInjector(fs, lang, models.Dependency.ImportLine), nil
	case models.InjectionIncludeLine:
		return NewLineInjector(fs, lang, models.Dependency.IncludeLine), nil
	case models.InjectionManifest:
		return NewManifestInjector(fs, ws, lang), nil
	case models.InjectionNone:
		return nil, fmt.Errorf("%w: %s", models.ErrInjectionUnsupported, lang.DisplayName())
	}
	return nil, fmt.Errorf("%w: %s", models.ErrInjectionUnsupported, lang.DisplayName())
}
