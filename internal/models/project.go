package models

import "path/filepath"

const (
	// SourceDirName is the source subdirectory of a scaffolded project.
	SourceDirName = "src"

	// BuildDirName is the build-output subdirectory of a scaffolded project.
	BuildDirName = "target"

	// IgnoreFileName is the ignore file written into every project.
	IgnoreFileName = ".gitignore"

	// ManifestFileName is the manifest used by manifest-based languages.
	ManifestFileName = "Cargo.toml"

	// DependenciesHeader is the manifest section that holds dependency entries.
	DependenciesHeader = "[dependencies]"
)

// Project represents a scaffolded project directory.
type Project struct {
	// Name is the project directory as given by the caller
	Name string

	// Language is the language of the initial source file
	Language Language

	// RootPath is the project directory
	RootPath string

	// SourceDir holds the initial source file
	SourceDir string

	// BuildDir is the build-output directory
	BuildDir string

	// IgnoreFilePath is the path of the generated .gitignore
	IgnoreFilePath string

	// ManifestPath is set only for manifest-based languages.
	ManifestPath string

	// InitialFile is the generated source file inside SourceDir
	InitialFile string
}

// NewProject lays out the paths of a project rooted at name.
func NewProject(name string, lang Language, initialFileName string) *Project {
	root := filepath.Clean(name)
	p := &Project{
		Name:           name,
		Language:       lang,
		RootPath:       root,
		SourceDir:      filepath.Join(root, SourceDirName),
		BuildDir:       filepath.Join(root, BuildDirName),
		IgnoreFilePath: filepath.Join(root, IgnoreFileName),
		InitialFile:    filepath.Join(root, SourceDirName, initialFileName),
	}

	if lang.Injection() == InjectionManifest {
		p.ManifestPath = filepath.Join(root, ManifestFileName)
	}

	return p
}

// Directories returns the directories a scaffold creates, parents first.
func (p *Project) Directories() []string {
	return []string{p.RootPath, p.SourceDir, p.BuildDir}
}

// IgnorePattern is the .gitignore line that excludes the build directory.
func (p *Project) IgnorePattern() string {
	return "/" + BuildDirName
}
