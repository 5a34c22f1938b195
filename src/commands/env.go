package commands

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"gopkg.in/urfave/cli.v1"

	"github.com/moonrepo/plugins/src/config"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/fs"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/repo"
)

type commandEnv struct {
	Root    string // repository root, or the working directory outside a repository
	Config  *config.Config
	GitHub  *github.Client
	Verbose bool
}

func applyVerboseFlag(c *cli.Context) bool {
	verbose := c.GlobalBool("verbose") || c.Bool("verbose")
	if verbose {
		print.SetVerbose()
	}
	return verbose
}

func getCommandEnv(c *cli.Context) (commandEnv, error) {
	verbose := applyVerboseFlag(c)

	dir, err := fs.Resolve(".", workingDir(c))
	if err != nil {
		return commandEnv{}, errors.Wrap(err, "failed to resolve working directory")
	}
	root := repo.RootOr(dir)
	print.Verb("using repository root", root)

	cfg, err := config.Load(root)
	if err != nil {
		return commandEnv{}, err
	}

	gh, err := newGitHubClient(context.Background(), cfg.GitHubToken, cfg.GitHubAPI)
	if err != nil {
		return commandEnv{}, err
	}

	return commandEnv{
		Root:    root,
		Config:  cfg,
		GitHub:  gh,
		Verbose: verbose,
	}, nil
}

// path resolves a configured path against the repository root.
func (e commandEnv) path(p string) (string, error) {
	return fs.Resolve(e.Root, p)
}

// newGitHubClient sends the token as a bearer token, or no Authorization header at all
// when the token is empty. A non-empty api replaces the api.github.com base URL.
func newGitHubClient(ctx context.Context, token, api string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	client := github.NewClient(httpClient)

	if api != "" {
		base, err := url.Parse(strings.TrimSuffix(api, "/") + "/")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid github_api %s", api)
		}
		client.BaseURL = base
	}

	return client, nil
}

func workingDir(c *cli.Context) string {
	dir := c.GlobalString("dir")
	if c.IsSet("dir") {
		dir = c.String("dir")
	}
	if dir == "" || dir == "." {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return dir
}
