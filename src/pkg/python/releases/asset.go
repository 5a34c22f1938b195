package releases

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	assetPrefix    = "cpython-"
	checksumSuffix = ".sha256"
)

// OptLevels lists the build optimisation tags from most to least wanted.
var OptLevels = []string{
	"pgo+lto",
	"pgo",
	"lto",
	"lto+static",
	"noopt",
	"noopt+static",
}

// AssetInfo is the canonical key an asset name describes.
type AssetInfo struct {
	Version    string
	Triple     string
	IsChecksum bool
}

// Decompose splits an asset file name into its normalised version and triple. Two naming
// schemes exist:
//
//	cpython-3.10.2+20220227-aarch64-apple-darwin-pgo-full.tar.zst
//	cpython-3.7.3-windows-amd64-shared-pgo-20190430T0616.tar.zst
func Decompose(assetName, releaseName string) (info AssetInfo, err error) {
	name := strings.TrimPrefix(assetName, assetPrefix)

	var (
		rawVersion string
		tokens     []string
	)

	if strings.Contains(name, "+"+releaseName) {
		parts := strings.SplitN(name, "+"+releaseName+"-", 2)
		if len(parts) != 2 {
			return info, errors.Errorf("asset %s does not follow the %s release naming", assetName, releaseName)
		}
		rawVersion = parts[0]
		tokens = strings.Split(parts[1], "-")
	} else {
		parts := strings.Split(name, "-")
		rawVersion = parts[0]
		tokens = parts[1:]
	}

	if len(tokens) < 2 {
		return info, errors.Errorf("asset %s has no platform", assetName)
	}

	last := tokens[len(tokens)-1]
	info.IsChecksum = strings.HasSuffix(last, checksumSuffix)

	rawTriple := strings.Join(withoutOptLevels(tokens[:len(tokens)-1]), "-")

	info.Triple, err = NormalizeTriple(rawTriple)
	if err != nil {
		return info, errors.Wrapf(err, "asset %s", assetName)
	}

	info.Version, err = NormalizeVersion(rawVersion)
	if err != nil {
		return info, errors.Wrapf(err, "asset %s", assetName)
	}

	return info, nil
}

func withoutOptLevels(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isOptLevel(token) {
			kept = append(kept, token)
		}
	}
	return kept
}

func isOptLevel(token string) bool {
	for _, level := range OptLevels {
		if token == level {
			return true
		}
	}
	return false
}

// hasOptLevel reports whether one of the hyphen separated tokens of name is exactly level.
// Matching whole tokens keeps "lto" from claiming "pgo+lto" builds.
func hasOptLevel(name, level string) bool {
	for _, token := range strings.Split(name, "-") {
		if token == level {
			return true
		}
	}
	return false
}
