// Package repo locates the git repository the tooling runs in, so paths such as the
// python dataset resolve the same way from any subdirectory.
package repo

import (
	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Root returns the worktree root of the repository containing dir.
func Root(dir string) (string, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open repository from %s", dir)
	}

	wt, err := r.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get repository worktree")
	}

	return wt.Filesystem.Root(), nil
}

// RootOr returns the repository root containing dir, or dir itself when it is not inside
// a repository.
func RootOr(dir string) string {
	root, err := Root(dir)
	if err != nil {
		return dir
	}
	return root
}
