package releases

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Release is one python-build-standalone release as published on GitHub.
type Release struct {
	Name   string
	Assets []Asset
}

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name        string
	DownloadURL string
}

// ID returns the numeric release identifier, which is the date prefix of the tag
// (20190427T2308 -> 20190427).
func (r Release) ID() (int, error) {
	end := 0
	for end < len(r.Name) && r.Name[end] >= '0' && r.Name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errors.Errorf("release %q has no numeric identifier", r.Name)
	}
	id, err := strconv.Atoi(r.Name[:end])
	if err != nil {
		return 0, errors.Wrapf(err, "release %q has an invalid identifier", r.Name)
	}
	return id, nil
}

// SortReleases orders releases oldest first. Releases without a numeric identifier are
// rejected since their position cannot be decided.
func SortReleases(list []Release) error {
	ids := make(map[string]int, len(list))
	for _, r := range list {
		id, err := r.ID()
		if err != nil {
			return err
		}
		ids[r.Name] = id
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := ids[list[i].Name], ids[list[j].Name]
		if a != b {
			return a < b
		}
		return list[i].Name < list[j].Name
	})

	return nil
}
