package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/tui"
)

// Scaffolder creates the project once the answers are known.
type Scaffolder interface {
	Scaffold(lang models.Language, projectName, initialFileName string) (*models.Project, error)
}

// Answers are the values collected by the wizard.
type Answers struct {
	Language    models.Language
	ProjectName string
	FileName    string
}

// Result captures the successful output of the flow.
type Result struct {
	Answers Answers
	Project *models.Project
}

// Flow asks for a language, a project name and an initial file name and
// then scaffolds the project.
type Flow struct {
	scaffolder Scaffolder
	theme      *huh.Theme
}

// NewFlow constructs a Flow using the lion huh theme.
func NewFlow(scaffolder Scaffolder) *Flow {
	return &Flow{
		scaffolder: scaffolder,
		theme:      tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	lang, err := f.selectLanguage()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	answers, err := f.inputNames(lang)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return f.Apply(answers)
}

// Apply scaffolds the project described by answers.
func (f *Flow) Apply(answers Answers) (*Result, error) {
	project, err := f.scaffolder.Scaffold(answers.Language, answers.ProjectName, answers.FileName)
	if err != nil {
		return nil, err
	}

	return &Result{Answers: answers, Project: project}, nil
}

func (f *Flow) selectLanguage() (models.Language, error) {
	lang := models.LanguagePython

	opts := make([]huh.Option[models.Language], 0, len(models.All()))
	for _, l := range models.All() {
		label := fmt.Sprintf("%s (.%s)", l.DisplayName(), l.Extension())
		opts = append(opts, huh.NewOption(label, l))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Language]().
				Options(opts...).
				Value(&lang),
		).
			Title("Language").
			Description("Pick the language of the initial source file."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return models.LanguageUnknown, err
	}

	return lang, nil
}

func (f *Flow) inputNames(lang models.Language) (Answers, error) {
	answers := Answers{
		Language: lang,
		FileName: lang.FileName("main"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("myapp").
				Value(&answers.ProjectName).
				Validate(ValidateProjectName),
			huh.NewInput().
				Title("Initial file").
				Value(&answers.FileName).
				Validate(func(v string) error {
					return ValidateFileName(lang, v)
				}),
		).
			Title("Project").
			Description(fmt.Sprintf("Creates src/, target/ and .gitignore for a %s project.", lang.DisplayName())),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return Answers{}, err
	}

	answers.ProjectName = strings.TrimSpace(answers.ProjectName)
	answers.FileName = strings.TrimSpace(answers.FileName)
	return answers, nil
}

// ValidateProjectName rejects blank names and names that would escape
// the working directory.
func ValidateProjectName(v string) error {
	name := strings.TrimSpace(v)
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(filepath.ToSlash(filepath.Clean(name)), "../") {
		return fmt.Errorf("project name must be a path below the current directory")
	}
	return nil
}

// ValidateFileName requires a plain file name with the language's extension.
func ValidateFileName(lang models.Language, v string) error {
	name := strings.TrimSpace(v)
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name must not contain a directory")
	}
	if models.ResolveFile(name) != lang {
		return fmt.Errorf("file name must end in .%s", lang.Extension())
	}
	return nil
}
