package filesystem

import (
	"io/fs"
)

// FileSystem is the set of file operations the engine performs on source
// files, manifests and project skeletons. Relative paths are resolved
// against the working directory reported by Getwd.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
}
