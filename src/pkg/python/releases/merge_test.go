package releases

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelease(name string, assets ...string) Release {
	r := Release{Name: name}
	for _, a := range assets {
		r.Assets = append(r.Assets, Asset{
			Name:        a,
			DownloadURL: "https://example.com/" + name + "/" + a,
		})
	}
	return r
}

func TestMergePrefersHigherOptLevel(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20220227",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-noopt-full.tar.zst",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	entry, ok := data.Get("3.10.2", "aarch64-apple-darwin")
	require.True(t, ok)
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)
	assert.Empty(t, entry.SHA)
}

func TestMergeUsesOneTierPerRelease(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20220227",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo+lto-full.tar.zst",
			"cpython-3.10.2+20220227-x86_64-unknown-linux-gnu-noopt-full.tar.zst",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	_, ok := data.Get("3.10.2", "aarch64-apple-darwin")
	assert.True(t, ok)
	_, ok = data.Get("3.10.2", "x86_64-unknown-linux-gnu")
	assert.False(t, ok)
}

func TestMergeFirstWriterWins(t *testing.T) {
	older := newRelease("20220227",
		"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst",
	)
	newer := newRelease("20220318",
		"cpython-3.10.2+20220318-aarch64-apple-darwin-pgo-full.tar.zst",
		"cpython-3.10.3+20220318-aarch64-apple-darwin-pgo-full.tar.zst",
	)

	data := Dataset{}
	// given newest first, as the API returns them
	require.NoError(t, Merge(data, []Release{newer, older}, DefaultMergeOptions()))

	entry, _ := data.Get("3.10.2", "aarch64-apple-darwin")
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)

	entry, _ = data.Get("3.10.3", "aarch64-apple-darwin")
	assert.Equal(t, "20220318/cpython-3.10.3+20220318-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)
}

func TestMergeKeepsExistingEntries(t *testing.T) {
	data := Dataset{
		"3.10.2": {
			"aarch64-apple-darwin": {File: "20220101/existing.tar.zst"},
		},
	}

	require.NoError(t, Merge(data, []Release{
		newRelease("20220227", "cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst"),
	}, DefaultMergeOptions()))

	entry, _ := data.Get("3.10.2", "aarch64-apple-darwin")
	assert.Equal(t, "20220101/existing.tar.zst", entry.File)
}

func TestMergeFiltersUnwantedBuilds(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20240713",
			"cpython-3.12.4+20240713-aarch64-apple-darwin-debug-full.tar.zst",
			"cpython-3.12.4+20240713-aarch64-apple-darwin-install_only.tar.gz",
			"cpython-3.13.0b3+20240713-aarch64-apple-darwin-freethreaded+pgo-full.tar.zst",
			"cpython-3.12.4+20240713-x86_64_v3-unknown-linux-gnu-pgo+lto-full.tar.zst",
			"cpython-3.12.4+20240713-x86_64-pc-windows-msvc-static-noopt-full.tar.zst",
			"cpython-3.12.4+20240713-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, data.Len())
	_, ok := data.Get("3.12.4", "x86_64-unknown-linux-gnu")
	assert.True(t, ok)
}

func TestMergeChecksumFiles(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20220227",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst.sha256",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst",
			"cpython-3.10.2+20220227-i686-pc-windows-msvc-shared-pgo-full.tar.zst.sha256",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	entry, ok := data.Get("3.10.2", "aarch64-apple-darwin")
	require.True(t, ok)
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst.sha256", entry.SHA)

	// a checksum on its own never creates an entry
	_, ok = data.Get("3.10.2", "i686-pc-windows-msvc")
	assert.False(t, ok)
}

func TestMergeChecksumOnlyDescribesRecordedFile(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20220227",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst",
		),
		newRelease("20220318",
			"cpython-3.10.2+20220318-aarch64-apple-darwin-pgo-full.tar.zst",
			"cpython-3.10.2+20220318-aarch64-apple-darwin-pgo-full.tar.zst.sha256",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	entry, _ := data.Get("3.10.2", "aarch64-apple-darwin")
	assert.Equal(t, "20220227/cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst", entry.File)
	assert.Empty(t, entry.SHA)
}

func TestMergeManifestCutoff(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20250702",
			"cpython-3.13.4+20250702-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst",
		),
		newRelease("20250708",
			"cpython-3.13.5+20250708-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst",
			"cpython-3.13.5+20250708-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst.sha256",
		),
	}, DefaultMergeOptions())
	require.NoError(t, err)

	entry, _ := data.Get("3.13.4", "x86_64-unknown-linux-gnu")
	assert.Empty(t, entry.SHA)

	entry, _ = data.Get("3.13.5", "x86_64-unknown-linux-gnu")
	assert.Equal(t, "20250708/SHA256SUMS", entry.SHA)
}

func TestMergeIsIdempotent(t *testing.T) {
	list := []Release{
		newRelease("20190427T2308",
			"cpython-3.7.3-linux64-pgo-20190427T2308.tar.zst",
			"cpython-3.7.3-linux64-pgo-20190427T2308.tar.zst.sha256",
		),
		newRelease("20220227",
			"cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst",
			"cpython-3.10.2+20220227-x86_64-pc-windows-msvc-shared-pgo-full.tar.zst",
		),
		newRelease("20250708",
			"cpython-3.13.5+20250708-x86_64-unknown-linux-gnu-pgo+lto-full.tar.zst",
		),
	}

	data := Dataset{}
	require.NoError(t, Merge(data, list, DefaultMergeOptions()))
	first, err := Marshal(data)
	require.NoError(t, err)

	reloaded := Dataset{}
	require.NoError(t, json.Unmarshal(first, &reloaded))
	require.NoError(t, Merge(reloaded, list, DefaultMergeOptions()))
	second, err := Marshal(reloaded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, 4, reloaded.Len())
}

func TestMergeAbortsOnUnknownTriple(t *testing.T) {
	data := Dataset{}
	err := Merge(data, []Release{
		newRelease("20220227",
			"cpython-3.10.2+20220227-sparc64-sun-solaris-pgo-full.tar.zst",
		),
	}, DefaultMergeOptions())
	require.Error(t, err)

	_, ok := errors.Cause(err).(*UnknownTripleError)
	assert.True(t, ok, "expected an unknown triple error, got %v", err)
}

func TestMergeRejectsReleaseWithoutIdentifier(t *testing.T) {
	err := Merge(Dataset{}, []Release{newRelease("latest")}, DefaultMergeOptions())
	assert.Error(t, err)
}

func TestSortReleases(t *testing.T) {
	list := []Release{
		{Name: "20220227"},
		{Name: "20190427T2308"},
		{Name: "20190430T0616"},
		{Name: "20190427"},
	}
	require.NoError(t, SortReleases(list))

	var names []string
	for _, r := range list {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"20190427", "20190427T2308", "20190430T0616", "20220227"}, names)
}
