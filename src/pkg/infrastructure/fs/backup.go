package fs

import (
	"github.com/otiai10/copy"
	"github.com/pkg/errors"
)

// BackupSuffix is appended to a file name to form its backup copy.
const BackupSuffix = ".bak"

// Backup copies path to path+BackupSuffix, replacing any previous backup. It returns the
// backup location, or "" when path does not exist.
func Backup(path string) (string, error) {
	if !Exists(path) {
		return "", nil
	}
	target := path + BackupSuffix
	if err := copy.Copy(path, target); err != nil {
		return "", errors.Wrapf(err, "failed to back up %s", path)
	}
	return target, nil
}
