package e2e_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jakoblorz/lion/internal/cli"
	"github.com/jakoblorz/lion/internal/config"
	"github.com/jakoblorz/lion/internal/filesystem"
	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/templates"
	"github.com/jakoblorz/lion/internal/toolchain"
	"github.com/stretchr/testify/require"
)

func lion(t *testing.T, runner toolchain.Runner, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(filesystem.NewOSFileSystem(), runner, cli.WithConfig(config.Default()))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScaffoldOnDisk(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := lion(t, toolchain.NewMockRunner(), "proj", "main.go", "myapp")
	require.NoError(t, err)

	for _, sub := range []string{"myapp", "myapp/src", "myapp/target"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}

	ignore, err := os.ReadFile(filepath.Join(dir, "myapp", ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, "/target\n", string(ignore))

	source, err := os.ReadFile(filepath.Join(dir, "myapp", "src", "main.go"))
	require.NoError(t, err)
	require.Equal(t, templates.MustFor(models.LanguageGo), string(source))

	_, err = os.Stat(filepath.Join(dir, "myapp", "Cargo.toml"))
	require.True(t, os.IsNotExist(err))
}

func TestManifestOnDisk(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := lion(t, toolchain.NewMockRunner(), "new", "main.rs", "serde")
	require.NoError(t, err)

	_, err = lion(t, toolchain.NewMockRunner(), "dep", "main.rs", "rand")
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	require.NoError(t, err)
	require.Equal(t, "[dependencies]\nrand = \"*\"\nserde = \"*\"\n", string(manifest))
}

func TestRunPythonOnDisk(t *testing.T) {
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}

	dir := t.TempDir()
	chdir(t, dir)

	_, err = lion(t, toolchain.NewMockRunner(), "new", "hello.py")
	require.NoError(t, err)

	var stdout bytes.Buffer
	runner := toolchain.NewOSRunner()
	runner.Stdout = &stdout

	cfg := config.Default()
	cfg.Toolchain.Python = python

	cmd := cli.NewRootCommand(filesystem.NewOSFileSystem(), runner, cli.WithConfig(cfg))
	cmd.SetArgs([]string{"run", "hello.py"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	require.Equal(t, "Hello Lion!\n", stdout.String())
	require.DirExists(t, filepath.Join(dir, "target"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
