package engine

import (
	"bytes"
	"fmt"

	"github.com/denormal/go-gitignore"
	"github.com/jakoblorz/lion/internal/models"
)

// Scaffold creates a project directory with src/, target/, a .gitignore
// excluding the build directory and, for manifest languages, an empty
// manifest. The initial source file is then created from the template.
func (e *Engine) Scaffold(lang models.Language, projectName, initialFileName string) (*models.Project, error) {
	project := models.NewProject(projectName, lang, initialFileName)

	for _, dir := range project.Directories() {
		if err := e.fs.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := e.writeIgnoreFile(project); err != nil {
		return nil, err
	}

	switch {
	case project.ManifestPath != "":
		if err := e.fs.WriteFile(project.ManifestPath, nil, filePerm); err != nil {
			return nil, fmt.Errorf("failed to write manifest: %w", err)
		}
	case !lang.IsKnown():
		e.warn("unknown file extension, no manifest created", "project", project.Name)
	}

	if err := e.Create(project.InitialFile, lang, ""); err != nil {
		return nil, err
	}
	e.logger.Debug("scaffolded project", "project", project.Name, "language", lang.String())

	return project, nil
}

func (e *Engine) writeIgnoreFile(project *models.Project) error {
	content := []byte(project.IgnorePattern() + "\n")
	if err := e.fs.WriteFile(project.IgnoreFilePath, content, filePerm); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}

	ignore := gitignore.New(bytes.NewReader(content), e.ws.Abs(project.RootPath), nil)
	if match := ignore.Relative(models.BuildDirName, true); match == nil || !match.Ignore() {
		return fmt.Errorf(".gitignore of %s does not exclude %s", project.Name, models.BuildDirName)
	}

	return nil
}
