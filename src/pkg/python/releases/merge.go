package releases

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

const (
	// ManifestCutoff is the first release that publishes a single SHA256SUMS manifest
	// instead of one .sha256 file per archive.
	ManifestCutoff = 20250708

	manifestName = "SHA256SUMS"
)

// FilterWords removes debug, install-only, free-threaded and redundant microarchitecture builds.
var FilterWords = []string{
	"freethreaded",
	"debug",
	"install_only",
	"msvc-static",
	"_v2-",
	"_v3-",
	"_v4-",
}

// MergeOptions controls which assets a release contributes to the dataset.
type MergeOptions struct {
	FilterWords    []string
	OptLevels      []string
	ManifestCutoff int
}

// DefaultMergeOptions returns the rule set used to generate the published dataset.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		FilterWords:    FilterWords,
		OptLevels:      OptLevels,
		ManifestCutoff: ManifestCutoff,
	}
}

// Merge folds releases into data. Releases are applied oldest first and a populated
// field is never replaced, so merging the same releases again leaves data unchanged.
// On error data may hold part of the merge and must not be saved.
func Merge(data Dataset, list []Release, opts MergeOptions) error {
	ordered := make([]Release, len(list))
	copy(ordered, list)
	if err := SortReleases(ordered); err != nil {
		return err
	}

	for _, release := range ordered {
		if err := mergeRelease(data, release, opts); err != nil {
			return errors.Wrapf(err, "failed to merge release %s", release.Name)
		}
	}

	return nil
}

func mergeRelease(data Dataset, release Release, opts MergeOptions) error {
	id, err := release.ID()
	if err != nil {
		return err
	}

	assets := filterAssets(release.Assets, opts.FilterWords)

	for _, level := range opts.OptLevels {
		var tier []Asset
		for _, asset := range assets {
			if hasOptLevel(asset.Name, level) {
				tier = append(tier, asset)
			}
		}
		if len(tier) == 0 {
			continue
		}

		print.Verb("release", release.Name, "using", len(tier), level, "assets")
		return mergeTier(data, release.Name, id, tier, opts)
	}

	print.Verb("release", release.Name, "has no usable assets")
	return nil
}

func mergeTier(data Dataset, releaseName string, id int, tier []Asset, opts MergeOptions) error {
	type decomposed struct {
		asset Asset
		info  AssetInfo
	}

	var archives, checksums []decomposed
	for _, asset := range tier {
		info, err := Decompose(asset.Name, releaseName)
		if err != nil {
			return err
		}
		if info.IsChecksum {
			checksums = append(checksums, decomposed{asset, info})
		} else {
			archives = append(archives, decomposed{asset, info})
		}
	}

	for _, d := range archives {
		entry := data.entry(d.info.Version, d.info.Triple)
		if entry.File == "" {
			entry.File = locator(releaseName, d.asset.Name)
		}
		if entry.SHA == "" && id >= opts.ManifestCutoff && entry.fromRelease(releaseName) {
			entry.SHA = locator(releaseName, manifestName)
		}
	}

	for _, d := range checksums {
		entry, ok := data.Get(d.info.Version, d.info.Triple)
		if !ok || entry.SHA != "" {
			continue
		}
		archive := strings.TrimSuffix(d.asset.Name, checksumSuffix)
		if entry.File == locator(releaseName, archive) {
			entry.SHA = locator(releaseName, d.asset.Name)
		}
	}

	return nil
}

func filterAssets(assets []Asset, words []string) []Asset {
	kept := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		if !containsAny(asset.Name, words) {
			kept = append(kept, asset)
		}
	}
	return kept
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func locator(releaseName, file string) string {
	return releaseName + "/" + file
}
