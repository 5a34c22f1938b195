package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "releases.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), PermDirShared, PermFileShared))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), PermDirShared, PermFileShared))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(contents))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are renamed away")
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	require.NoError(t, AppendFile(path, []byte("a=1\n"), PermFileShared))
	require.NoError(t, AppendFile(path, []byte("b=2\n"), PermFileShared))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(contents))
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "releases.json")

	backup, err := Backup(path)
	require.NoError(t, err)
	assert.Empty(t, backup)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	backup, err = Backup(path)
	require.NoError(t, err)
	assert.Equal(t, path+BackupSuffix, backup)

	contents, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(contents))
}

func TestResolve(t *testing.T) {
	base := t.TempDir()

	got, err := Resolve(base, "tools/python/releases.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "tools", "python", "releases.json"), got)

	abs := filepath.Join(base, "elsewhere.json")
	got, err = Resolve("/unused", abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}
