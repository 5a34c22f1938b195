package releases

import (
	"github.com/google/go-github/github"
)

// FromGitHub converts API release records, naming each release by its tag and falling
// back to the release title.
func FromGitHub(list []*github.RepositoryRelease) []Release {
	out := make([]Release, 0, len(list))
	for _, r := range list {
		name := r.GetTagName()
		if name == "" {
			name = r.GetName()
		}

		assets := make([]Asset, 0, len(r.Assets))
		for _, a := range r.Assets {
			assets = append(assets, Asset{
				Name:        a.GetName(),
				DownloadURL: a.GetBrowserDownloadURL(),
			})
		}

		out = append(out, Release{Name: name, Assets: assets})
	}
	return out
}
