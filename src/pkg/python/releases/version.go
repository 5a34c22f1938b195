package releases

import (
	"fmt"
	"regexp"
)

// MalformedVersionError is returned when a version token does not look like
// <major>.<minor>[.<patch>][<tag><num>].
type MalformedVersionError struct {
	Raw string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q", e.Raw)
}

var matchVersion = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:([a-z]+)(\d+))?$`)

// NormalizeVersion turns an upstream version token such as 3.13.0rc1 into 3.13.0-rc.1.
func NormalizeVersion(raw string) (string, error) {
	g := matchVersion.FindStringSubmatch(raw)
	if g == nil {
		return "", &MalformedVersionError{Raw: raw}
	}

	patch := g[3]
	if patch == "" {
		patch = "0"
	}

	version := fmt.Sprintf("%s.%s.%s", g[1], g[2], patch)
	if g[4] != "" {
		version += fmt.Sprintf("-%s.%s", g[4], g[5])
	}

	return version, nil
}
