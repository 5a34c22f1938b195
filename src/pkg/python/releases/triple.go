package releases

import (
	"fmt"
	"sort"
)

// UnknownTripleError is returned when an upstream platform identifier is not in the triple table.
// New upstream platforms must be added to the table explicitly.
type UnknownTripleError struct {
	Raw string
}

func (e *UnknownTripleError) Error() string {
	return fmt.Sprintf("unknown triple %s", e.Raw)
}

// triples maps every platform identifier python-build-standalone has ever published to the
// canonical target triple used as a dataset key.
var triples = map[string]string{
	"aarch64-apple-darwin": "aarch64-apple-darwin",

	"aarch64-unknown-linux-gnu": "aarch64-unknown-linux-gnu",

	"i686-pc-windows-msvc":        "i686-pc-windows-msvc",
	"i686-pc-windows-msvc-shared": "i686-pc-windows-msvc",
	"i686-pc-windows-msvc-static": "i686-pc-windows-msvc",

	"i686-unknown-linux-gnu": "i686-unknown-linux-gnu",

	"macos":               "x86_64-apple-darwin",
	"x86_64-apple-darwin": "x86_64-apple-darwin",

	"windows-amd64":                 "x86_64-pc-windows-msvc",
	"windows-amd64-shared":          "x86_64-pc-windows-msvc",
	"windows-amd64-static":          "x86_64-pc-windows-msvc",
	"windows-x86":                   "x86_64-pc-windows-msvc",
	"windows-x86-shared":            "x86_64-pc-windows-msvc",
	"windows-x86-static":            "x86_64-pc-windows-msvc",
	"x86_64-pc-windows-msvc":        "x86_64-pc-windows-msvc",
	"x86_64-pc-windows-msvc-shared": "x86_64-pc-windows-msvc",
	"x86_64-pc-windows-msvc-static": "x86_64-pc-windows-msvc",

	"aarch64-pc-windows-msvc": "aarch64-pc-windows-msvc",

	"linux64":                     "x86_64-unknown-linux-gnu",
	"x86_64-unknown-linux-gnu":    "x86_64-unknown-linux-gnu",
	"x86_64_v2-unknown-linux-gnu": "x86_64-unknown-linux-gnu",
	"x86_64_v3-unknown-linux-gnu": "x86_64-unknown-linux-gnu",
	"x86_64_v4-unknown-linux-gnu": "x86_64-unknown-linux-gnu",

	"linux64-musl":                 "x86_64-unknown-linux-musl",
	"x86_64-unknown-linux-musl":    "x86_64-unknown-linux-musl",
	"x86_64_v2-unknown-linux-musl": "x86_64-unknown-linux-musl",
	"x86_64_v3-unknown-linux-musl": "x86_64-unknown-linux-musl",
	"x86_64_v4-unknown-linux-musl": "x86_64-unknown-linux-musl",

	"ppc64le-unknown-linux-gnu": "powerpc64le-unknown-linux-gnu",

	"s390x-unknown-linux-gnu": "s390x-unknown-linux-gnu",

	"armv7-unknown-linux-gnueabi":   "armv7-unknown-linux-gnueabi",
	"armv7-unknown-linux-gnueabihf": "armv7-unknown-linux-gnueabihf",

	"riscv64-unknown-linux-gnu": "riscv64gc-unknown-linux-gnu",
}

// NormalizeTriple maps a raw platform identifier to its canonical target triple.
func NormalizeTriple(raw string) (string, error) {
	triple, ok := triples[raw]
	if !ok {
		return "", &UnknownTripleError{Raw: raw}
	}
	return triple, nil
}

// KnownTriples returns every raw identifier the normalizer accepts, sorted.
func KnownTriples() []string {
	known := make([]string, 0, len(triples))
	for raw := range triples {
		known = append(known, raw)
	}
	sort.Strings(known)
	return known
}
