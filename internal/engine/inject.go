package engine

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/lion/internal/dependency"
	"github.com/jakoblorz/lion/internal/models"
)

// Inject declares dependencyName in path using the language's strategy.
// Languages without a strategy produce a diagnostic and leave every file
// untouched. For manifest languages the source file is reset to the
// template after the manifest is updated.
func (e *Engine) Inject(lang models.Language, path, dependencyName string) error {
	injector, err := dependency.NewInjector(e.fs, e.ws, lang)
	if errors.Is(err, models.ErrInjectionUnsupported) {
		e.warn(fmt.Sprintf("dependency injection is not supported for %s files", lang.DisplayName()),
			"path", path, "dependency", dependencyName)
		return nil
	}
	if err != nil {
		return err
	}

	dep, err := models.NewDependency(dependencyName)
	if err != nil {
		return err
	}

	if err := injector.Inject(path, dep); err != nil {
		return fmt.Errorf("failed to inject %s into %s: %w", dep.Name, path, err)
	}
	e.logger.Debug("injected dependency", "path", path, "dependency", dep.Name, "language", lang.String())

	return nil
}
