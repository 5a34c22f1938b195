package releases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() Dataset {
	return Dataset{
		"3.12.1": {
			"x86_64-unknown-linux-gnu": {File: "20240107/cpython-3.12.1+20240107-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst"},
			"aarch64-apple-darwin":     {File: "20240107/cpython-3.12.1+20240107-aarch64-apple-darwin-pgo+lto-full.tar.zst"},
		},
		"3.12.4": {
			"x86_64-unknown-linux-gnu": {
				File: "20240713/cpython-3.12.4+20240713-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst",
				SHA:  "20240713/cpython-3.12.4+20240713-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst.sha256",
			},
		},
		"3.13.0-rc.1": {
			"x86_64-unknown-linux-gnu": {File: "20240814/cpython-3.13.0rc1+20240814-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst"},
		},
	}
}

func TestDatasetVersions(t *testing.T) {
	versions, err := testDataset().Versions()
	require.NoError(t, err)
	assert.Equal(t, []string{"3.13.0-rc.1", "3.12.4", "3.12.1"}, versions)
}

func TestDatasetVersionsInvalid(t *testing.T) {
	_, err := Dataset{"not-a-version": {}}.Versions()
	assert.Error(t, err)
}

func TestDatasetTriples(t *testing.T) {
	assert.Equal(t, []string{"aarch64-apple-darwin", "x86_64-unknown-linux-gnu"}, testDataset().Triples("3.12.1"))
	assert.Empty(t, testDataset().Triples("2.7.18"))
}

func TestDatasetResolve(t *testing.T) {
	data := testDataset()

	t.Run("exact version", func(t *testing.T) {
		version, entry, err := data.Resolve("3.13.0-rc.1", "x86_64-unknown-linux-gnu")
		require.NoError(t, err)
		assert.Equal(t, "3.13.0-rc.1", version)
		assert.Contains(t, entry.File, "20240814/")
	})

	t.Run("newest match for triple", func(t *testing.T) {
		version, _, err := data.Resolve("~3.12", "x86_64-unknown-linux-gnu")
		require.NoError(t, err)
		assert.Equal(t, "3.12.4", version)
	})

	t.Run("skips versions without the triple", func(t *testing.T) {
		version, _, err := data.Resolve("~3.12", "aarch64-apple-darwin")
		require.NoError(t, err)
		assert.Equal(t, "3.12.1", version)
	})

	t.Run("no matching version", func(t *testing.T) {
		_, _, err := data.Resolve(">=3.14", "x86_64-unknown-linux-gnu")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "for version")
	})

	t.Run("no build for triple", func(t *testing.T) {
		_, _, err := data.Resolve("~3.12", "s390x-unknown-linux-gnu")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "for architecture")

		_, _, err = data.Resolve("3.12.4", "aarch64-apple-darwin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "for architecture")
	})

	t.Run("invalid constraint", func(t *testing.T) {
		_, _, err := data.Resolve("three", "x86_64-unknown-linux-gnu")
		assert.Error(t, err)
	})
}

func TestEntryURLs(t *testing.T) {
	entry := Entry{File: "20240713/a.tar.zst", SHA: "20240713/SHA256SUMS"}
	assert.Equal(t, DefaultDownloadBase+"/20240713/a.tar.zst", entry.DownloadURL(DefaultDownloadBase))
	assert.Equal(t, "https://mirror.local/20240713/SHA256SUMS", entry.ChecksumURL("https://mirror.local/"))

	assert.Empty(t, Entry{File: "20240713/a.tar.zst"}.ChecksumURL(DefaultDownloadBase))
}

func TestLoadMissingFile(t *testing.T) {
	data, err := Load(filepath.Join(t.TempDir(), "releases.json"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releases.json")
	require.NoError(t, os.WriteFile(path, []byte("<html>"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNullEntry(t *testing.T) {
	for _, contents := range []string{
		`{"3.10.2":{"aarch64-apple-darwin":null}}`,
		`{"3.10.2":{"aarch64-apple-darwin":{}}}`,
		`{"3.10.2":null}`,
	} {
		path := filepath.Join(t.TempDir(), "releases.json")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		_, err := Load(path)
		assert.Error(t, err, contents)
	}
}

func TestMergeIntoNullEntry(t *testing.T) {
	data := Dataset{
		"3.10.2": {"aarch64-apple-darwin": nil},
		"3.10.3": nil,
	}
	list := []Release{
		{Name: "20220227", Assets: []Asset{
			{Name: "cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst"},
		}},
		{Name: "20220318", Assets: []Asset{
			{Name: "cpython-3.10.3+20220318-aarch64-apple-darwin-pgo-full.tar.zst"},
		}},
	}

	require.NoError(t, Merge(data, list, DefaultMergeOptions()))

	entry, ok := data.Get("3.10.2", "aarch64-apple-darwin")
	require.True(t, ok)
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)

	entry, ok = data.Get("3.10.3", "aarch64-apple-darwin")
	require.True(t, ok)
	assert.Equal(t, "20220318/cpython-3.10.3+20220318-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools", "python", "releases.json")
	data := Dataset{
		"3.10.2": {
			"aarch64-apple-darwin": {File: "20220227/a.tar.zst"},
		},
	}
	require.NoError(t, Save(path, data))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "3.10.2": {
    "aarch64-apple-darwin": {
      "file": "20220227/a.tar.zst"
    }
  }
}
`, string(contents))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}
