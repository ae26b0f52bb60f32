package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/lion/internal/filesystem"
)

// findFileUp looks for filename in startDir and its parents up to and
// including stopDir. Nothing is found when startDir is not below stopDir.
func findFileUp(fs filesystem.FileSystem, startDir, stopDir, filename string) (string, bool) {
	dir := filepath.Clean(startDir)
	stop := filepath.Clean(stopDir)
	if !isWithin(stop, dir) {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, filename)
		if fs.Exists(candidate) {
			return candidate, true
		}

		if dir == stop {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isWithin reports whether path equals root or lies below it.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
