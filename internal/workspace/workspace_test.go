package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkspace_Detect(t *testing.T) {
	fs := NewWorkspaceBuilder("/repo").Build()

	ws := New(fs)
	require.NoError(t, ws.Detect())
	require.Equal(t, "/repo", ws.RootPath)
	require.Equal(t, "/repo/src/main.rs", ws.Abs("src/main.rs"))
	require.Equal(t, "/elsewhere/a.rs", ws.Abs("/elsewhere/a.rs"))
}

func TestWorkspace_ManifestPath(t *testing.T) {
	t.Run("falls back to the root when no manifest exists", func(t *testing.T) {
		fs := NewWorkspaceBuilder("/repo").Build()
		ws := New(fs)
		require.NoError(t, ws.Detect())

		require.Equal(t, "/repo/Cargo.toml", ws.ManifestPath("main.rs"))
		require.Equal(t, "/repo/Cargo.toml", ws.ManifestPath("app/src/main.rs"))
	})

	t.Run("finds the nearest manifest above the source", func(t *testing.T) {
		fs := NewWorkspaceBuilder("/repo").
			AddManifest("", "[dependencies]\n").
			AddManifest("app", "[dependencies]\n").
			AddTemplateSource("app/src/main.rs").
			Build()
		ws := New(fs)
		require.NoError(t, ws.Detect())

		require.Equal(t, "/repo/app/Cargo.toml", ws.ManifestPath("app/src/main.rs"))
		require.Equal(t, "/repo/Cargo.toml", ws.ManifestPath("main.rs"))
	})

	t.Run("does not search above the workspace root", func(t *testing.T) {
		fs := NewWorkspaceBuilder("/repo/inner").Build()
		fs.AddFile("/repo/Cargo.toml", []byte("[dependencies]\n"))
		ws := New(fs)
		require.NoError(t, ws.Detect())

		require.Equal(t, "/repo/inner/Cargo.toml", ws.ManifestPath("main.rs"))
	})
}

func TestWorkspace_ManifestPath_SourceOutsideWorkspace(t *testing.T) {
	fs := NewWorkspaceBuilder("/home/u/work").Build()
	fs.AddFile("/Cargo.toml", []byte("[package]\n"))
	fs.AddFile("/tmp/x/Cargo.toml", []byte("[dependencies]\n"))
	ws := New(fs)
	require.NoError(t, ws.Detect())

	require.Equal(t, "/home/u/work/Cargo.toml", ws.ManifestPath("/tmp/x/main.rs"))
}

func TestIsWithin(t *testing.T) {
	require.True(t, isWithin("/repo", "/repo"))
	require.True(t, isWithin("/repo", "/repo/a/b"))
	require.False(t, isWithin("/repo", "/other"))
	require.False(t, isWithin("/repo/a", "/repo"))
	require.True(t, isWithin("/repo", "/repo/..hidden"))
}
