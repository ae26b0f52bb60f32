package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jakoblorz/lion/internal/config"
	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
	"github.com/jakoblorz/lion/internal/toolchain"
	"github.com/jakoblorz/lion/internal/workspace"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, fs filesystem.FileSystem, runner toolchain.Runner, cfg *config.Config, args ...string) result {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}

	cmd := NewRootCommand(fs, runner, WithConfig(cfg))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func read(t *testing.T, fs filesystem.FileSystem, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewCommand(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "new", "main.py")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Created main.py (Python)")
	require.Equal(t, templates.MustFor(models.LanguagePython), read(t, fs, "main.py"))
}

func TestNewCommand_WithDependency(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "new", "main.cpp", "fmt")
	require.NoError(t, res.err)
	require.Equal(t, "#include \"fmt/fmt.h\"\n"+templates.MustFor(models.LanguageCpp), read(t, fs, "main.cpp"))
}

func TestNewCommand_UnknownExtension(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "new", "notes.xyz")
	require.ErrorIs(t, res.err, models.ErrUnsupportedLanguage)
	require.False(t, fs.Exists("notes.xyz"))
}

func TestNewCommand_LangFlag(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "new", "hello", "--lang", "python")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Created hello (Python)")
	require.Equal(t, templates.MustFor(models.LanguagePython), read(t, fs, "hello"))

	res = run(t, fs, toolchain.NewMockRunner(), nil, "new", "main.c", "--lang", "rs")
	require.NoError(t, res.err)
	require.Equal(t, templates.MustFor(models.LanguageRust), read(t, fs, "main.c"))
}

func TestNewCommand_UnknownLangFlag(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "new", "main.py", "--lang", "cobol")
	require.ErrorIs(t, res.err, models.ErrUnsupportedLanguage)
	require.Contains(t, res.err.Error(), `unknown language "cobol"`)
	require.False(t, fs.Exists("main.py"))
}

func TestDepCommand(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").
		AddManifest("", "[dependencies]\nfoo = \"*\"\n").
		AddTemplateSource("main.rs").
		Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "dep", "main.rs", "bar")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Added bar to main.rs")
	require.Equal(t, "[dependencies]\nbar = \"*\"\nfoo = \"*\"\n", read(t, fs, "Cargo.toml"))
}

func TestDepCommand_Unsupported(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").AddTemplateSource("Main.java").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "dep", "Main.java", "guava")
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "dependency injection is not supported for Java files")
	require.Equal(t, templates.MustFor(models.LanguageJava), read(t, fs, "Main.java"))
}

func TestDepCommand_UnsupportedNoticeShownOnce(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").AddTemplateSource("Main.java").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "dep", "Main.java", "guava")
	require.NoError(t, res.err)
	require.Equal(t, 1, strings.Count(res.stderr, "dependency injection is not supported for Java files"))
}

func TestDepCommand_RequiresTwoArgs(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "dep", "main.py")
	require.Error(t, res.err)
}

func TestRunCommand(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").AddTemplateSource("main.c").Build()
	runner := toolchain.NewMockRunner()

	cfg := config.Default()
	cfg.Toolchain.C = "clang"

	res := run(t, fs, runner, cfg, "run", "main.c")
	require.NoError(t, res.err)

	calls := runner.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, "clang", calls[0].Name)
	require.Equal(t, toolchain.StepRun, calls[1].Step)
}

func TestRunCommand_CompileFailure(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").AddTemplateSource("main.rs").Build()
	runner := toolchain.NewMockRunner()
	runner.FailOn("rustc", nil)

	res := run(t, fs, runner, nil, "run", "main.rs")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "compile step failed")
	require.Equal(t, []string{"rustc"}, runner.Names())
}

func TestRunCommand_VerboseLogsSteps(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").AddTemplateSource("main.py").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "run", "main.py", "--verbose")
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, "running step")
	require.Contains(t, res.stderr, "python3 main.py")
}

func TestProjCommand(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "proj", "main.go", "myapp")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Created Go project myapp")
	require.Equal(t, "/target\n", read(t, fs, "myapp/.gitignore"))
	require.Equal(t, templates.MustFor(models.LanguageGo), read(t, fs, "myapp/src/main.go"))
}

func TestProjCommand_LangFlag(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "proj", "app", "crab", "--lang", "rust")
	require.NoError(t, res.err)
	require.True(t, fs.Exists("crab/Cargo.toml"))
	require.Equal(t, templates.MustFor(models.LanguageRust), read(t, fs, "crab/src/app"))
}

func TestProjCommand_SingleArgument(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/workspace").Build()

	res := run(t, fs, toolchain.NewMockRunner(), nil, "proj", "main.go")
	require.Error(t, res.err)
	require.False(t, fs.Exists("main.go"))
}

func TestLangsCommand(t *testing.T) {
	res := run(t, filesystem.NewMockFileSystem(), toolchain.NewMockRunner(), nil, "langs")
	require.NoError(t, res.err)

	for _, want := range []string{"C++", ".cpp", "Rust", "Cargo.toml", "Python", "import line", "interpreted"} {
		require.Contains(t, res.stdout, want)
	}
}

func TestConfigWarningsArePrinted(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "chatty"

	res := run(t, filesystem.NewMockFileSystem(), toolchain.NewMockRunner(), cfg, "langs")
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, `log level "chatty" is not recognized`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger("info", "json", &buf)
	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = newLogger("bogus", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
}
