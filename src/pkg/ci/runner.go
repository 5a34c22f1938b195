package ci

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

// Runner executes a command and returns what it wrote to stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host, forwarding their stderr.
type ExecRunner struct {
	Dir    string
	Stderr io.Writer
}

// Run executes name with args and fails when it exits non-zero.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	print.Verb("running", name, strings.Join(args, " "))

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gas
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "command %s failed", name)
	}

	return stdout.Bytes(), nil
}
