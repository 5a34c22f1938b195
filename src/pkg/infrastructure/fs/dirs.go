package fs

import (
	"os"
	"path/filepath"
)

// EnsureDirForFile creates the parent directory of path.
func EnsureDirForFile(path string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(path), perm)
}
