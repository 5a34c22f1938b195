package releases

import (
	"github.com/pkg/errors"
)

var hostTriples = map[string]string{
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"linux/386":     "i686-unknown-linux-gnu",
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm":     "armv7-unknown-linux-gnueabihf",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"linux/ppc64le": "powerpc64le-unknown-linux-gnu",
	"linux/riscv64": "riscv64gc-unknown-linux-gnu",
	"linux/s390x":   "s390x-unknown-linux-gnu",
	"windows/386":   "i686-pc-windows-msvc",
	"windows/amd64": "x86_64-pc-windows-msvc",
	"windows/arm64": "aarch64-pc-windows-msvc",
}

// HostTriple returns the canonical triple for a GOOS/GOARCH pair.
func HostTriple(goos, goarch string) (string, error) {
	triple, ok := hostTriples[goos+"/"+goarch]
	if !ok {
		return "", errors.Errorf("no python builds exist for %s/%s", goos, goarch)
	}
	return triple, nil
}
