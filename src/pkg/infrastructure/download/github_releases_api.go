package download

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

const (
	acceptHeader   = "application/vnd.github+json"
	snippetMaxSize = 512
)

// NonJSONResponseError is returned when the releases endpoint answers with something other
// than a JSON array, which GitHub occasionally does with an HTML error page.
type NonJSONResponseError struct {
	Page int
	Body string
}

func (e *NonJSONResponseError) Error() string {
	return fmt.Sprintf("GitHub API returned a non-JSON response for page %d: %s", e.Page, e.Body)
}

// ReleaseFeed pages through the releases of one repository, one request at a time.
type ReleaseFeed struct {
	client *github.Client
	owner  string
	repo   string

	// PerPage is the page size requested from the API.
	PerPage int
	// MaxPages stops pagination early when positive.
	MaxPages int
}

// NewReleaseFeed creates a feed for owner/repo.
func NewReleaseFeed(client *github.Client, owner, repo string) *ReleaseFeed {
	return &ReleaseFeed{
		client:  client,
		owner:   owner,
		repo:    repo,
		PerPage: 100,
	}
}

// Fetch requests pages until the Link header no longer advertises a next page or MaxPages
// is reached. Any failed page fails the whole fetch.
func (f *ReleaseFeed) Fetch(ctx context.Context) ([]*github.RepositoryRelease, error) {
	var all []*github.RepositoryRelease

	page := 1
	for fetched := 1; ; fetched++ {
		list, resp, err := f.Page(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)

		print.Verb("fetched page", page, "with", len(list), "releases")

		if resp.NextPage == 0 || (f.MaxPages > 0 && fetched >= f.MaxPages) {
			break
		}
		page = resp.NextPage
	}

	return all, nil
}

// Page requests a single page of releases.
func (f *ReleaseFeed) Page(ctx context.Context, page int) ([]*github.RepositoryRelease, *github.Response, error) {
	u := fmt.Sprintf("repos/%s/%s/releases?per_page=%d&page=%d", f.owner, f.repo, f.PerPage, page)

	req, err := f.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create releases request")
	}
	req.Header.Set("Accept", acceptHeader)

	var body bytes.Buffer
	resp, err := f.client.Do(ctx, req, &body)
	if err != nil {
		return nil, resp, errors.Wrapf(err, "failed to fetch releases page %d", page)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(body.Bytes()), []byte("[")) {
		return nil, resp, &NonJSONResponseError{Page: page, Body: snippet(body.String())}
	}

	var list []*github.RepositoryRelease
	if err := json.Unmarshal(body.Bytes(), &list); err != nil {
		return nil, resp, errors.Wrapf(err, "failed to parse releases page %d", page)
	}

	return list, resp, nil
}

func snippet(s string) string {
	if len(s) <= snippetMaxSize {
		return s
	}
	return s[:snippetMaxSize] + "..."
}
