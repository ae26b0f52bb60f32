package toolchain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/lion/internal/models"
)

// Binaries names the external tools a recipe may invoke.
type Binaries struct {
	Python string
	Go     string
	C      string
	Cpp    string
	Rust   string
	Javac  string
	Java   string
}

// DefaultBinaries returns the tool names looked up on PATH by default.
func DefaultBinaries() Binaries {
	return Binaries{
		Python: "python3",
		Go:     "go",
		C:      "gcc",
		Cpp:    "g++",
		Rust:   "rustc",
		Javac:  "javac",
		Java:   "java",
	}
}

// Settings parameterize recipe construction.
type Settings struct {
	Binaries     Binaries
	BuildDir     string
	ArtifactName string
	Platform     Platform
}

// DefaultSettings builds into target/lion_compiled on the host platform.
func DefaultSettings() Settings {
	return Settings{
		Binaries:     DefaultBinaries(),
		BuildDir:     models.BuildDirName,
		ArtifactName: "lion_compiled",
		Platform:     HostPlatform(),
	}
}

// ArtifactPath is the slash-separated output path of compiled programs.
func (s Settings) ArtifactPath() string {
	return s.Platform.Executable(path.Join(filepath.ToSlash(s.BuildDir), s.ArtifactName))
}

// RecipeFor returns the commands that compile and/or run sourcePath, in
// execution order. Every step must succeed before the next one starts.
func RecipeFor(lang models.Language, sourcePath string, s Settings) ([]Command, error) {
	switch lang {
	case models.LanguagePython:
		return []Command{
			{Step: StepRun, Name: s.Binaries.Python, Args: []string{sourcePath}},
		}, nil
	case models.LanguageGo:
		return []Command{
			{Step: StepRun, Name: s.Binaries.Go, Args: []string{"run", sourcePath}},
		}, nil
	case models.LanguageC:
		return nativeRecipe(s.Binaries.C, sourcePath, s), nil
	case models.LanguageCpp:
		return nativeRecipe(s.Binaries.Cpp, sourcePath, s), nil
	case models.LanguageRust:
		return nativeRecipe(s.Binaries.Rust, sourcePath, s), nil
	case models.LanguageJava:
		return javaRecipe(sourcePath, s), nil
	case models.LanguageUnknown:
		return nil, fmt.Errorf("running is not supported for this file type: %w", models.ErrUnsupportedLanguage)
	}
	return nil, fmt.Errorf("running is not supported for language %d: %w", int(lang), models.ErrUnsupportedLanguage)
}

// nativeRecipe compiles to a single artifact and then executes it.
func nativeRecipe(compiler, sourcePath string, s Settings) []Command {
	artifact := s.ArtifactPath()
	return []Command{
		{Step: StepCompile, Name: compiler, Args: []string{sourcePath, "-o", artifact}},
		{Step: StepRun, Name: s.Platform.Invocation(artifact)},
	}
}

// javaRecipe compiles classes into the build directory and starts the
// launcher on the class named after the source file.
func javaRecipe(sourcePath string, s Settings) []Command {
	classDir := filepath.ToSlash(s.BuildDir)
	return []Command{
		{Step: StepCompile, Name: s.Binaries.Javac, Args: []string{"-d", classDir, sourcePath}},
		{Step: StepRun, Name: s.Binaries.Java, Args: []string{"-cp", classDir, ClassName(sourcePath)}},
	}
}

// ClassName derives the Java class name from a source path: the base name
// without its extension.
func ClassName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
