package fs

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Exists reports whether path exists. Errors other than not-exist are treated as existing
// so callers surface them when they open the file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// Resolve expands a leading ~ and makes path absolute, relative to base when it is not
// already absolute.
func Resolve(base, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Abs(filepath.Join(base, expanded))
}
