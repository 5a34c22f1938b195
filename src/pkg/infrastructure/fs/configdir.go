package fs

import (
	"github.com/kirsle/configdir"
)

const configFolderName = "moonscripts"

// ConfigDir returns the user level configuration directory. It is not created.
func ConfigDir() string {
	return configdir.LocalConfig(configFolderName)
}
