package fs

import "os"

const (
	// PermDirShared is used for directories created for output files.
	PermDirShared os.FileMode = 0o755

	// PermFileShared is used for generated files committed to the repository.
	PermFileShared os.FileMode = 0o644
	// PermFileTemp is used while a file is being written, before it is renamed into place.
	PermFileTemp os.FileMode = 0o600
)
