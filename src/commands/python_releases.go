package commands

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/AlecAivazis/survey.v1"
	"gopkg.in/urfave/cli.v1"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/download"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/fs"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
	"github.com/moonrepo/plugins/src/pkg/python/releases"
)

const (
	incrementalPerPage = 5
	incrementalPages   = 1
)

var pythonReleasesFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "output, o",
		Usage: "dataset file to merge into and write - by default, the configured dataset_path",
	},
	cli.BoolFlag{
		Name:  "full",
		Usage: "discard the existing dataset and rebuild it from every published release",
	},
	cli.IntFlag{
		Name:  "pages",
		Usage: "maximum number of release pages to fetch - defaults to 1, or all pages with --full",
	},
	cli.IntFlag{
		Name:  "per-page",
		Usage: "releases per page - defaults to 5, or the configured per_page with --full",
	},
	cli.BoolFlag{
		Name:  "stdout",
		Usage: "print the merged dataset instead of writing it",
	},
	cli.BoolFlag{
		Name:  "yes, y",
		Usage: "skip the confirmation prompt before a full rebuild replaces the dataset",
	},
}

func pythonReleases(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	output := c.String("output")
	if output == "" {
		output = env.Config.DatasetPath
	}
	path, err := env.path(output)
	if err != nil {
		return errors.Wrap(err, "failed to resolve dataset path")
	}

	full := c.Bool("full")
	write := !c.Bool("stdout")
	if !write {
		print.SetOutput(c.App.ErrWriter)
	}

	data := releases.Dataset{}
	if !full {
		data, err = releases.Load(path)
		if err != nil {
			return err
		}
	} else if write && fs.Exists(path) && !c.Bool("yes") {
		proceed := false
		err = survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Replace %s with a full rebuild?", path),
		}, &proceed, nil)
		if err != nil {
			return errors.Wrap(err, "failed to open confirmation prompt")
		}
		if !proceed {
			print.Info("Full rebuild cancelled")
			return nil
		}
	}

	owner, name := env.Config.Repository()
	feed := download.NewReleaseFeed(env.GitHub, owner, name)
	feed.PerPage, feed.MaxPages = incrementalPerPage, incrementalPages
	if full {
		feed.PerPage, feed.MaxPages = env.Config.PerPage, 0
	}
	if c.IsSet("per-page") {
		feed.PerPage = c.Int("per-page")
	}
	if c.IsSet("pages") {
		feed.MaxPages = c.Int("pages")
	}

	before := data.Len()

	err = updateDataset(context.Background(), feed, data, releases.DefaultMergeOptions())
	if err != nil {
		return err
	}

	print.Info("Merged", data.Len()-before, "new entries,", data.Len(), "in total")

	if !write {
		contents, err := releases.Marshal(data)
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(contents)
		return err
	}

	if full {
		backup, err := fs.Backup(path)
		if err != nil {
			return err
		}
		if backup != "" {
			print.Info("Previous dataset saved to", backup)
		}
	}

	if err := releases.Save(path, data); err != nil {
		return err
	}
	print.Info("Wrote dataset to", path)

	return nil
}

// updateDataset fetches every requested page before merging, so a failed request leaves
// data untouched.
func updateDataset(ctx context.Context, feed *download.ReleaseFeed, data releases.Dataset, opts releases.MergeOptions) error {
	list, err := feed.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch python releases")
	}
	print.Verb("fetched", len(list), "releases")

	return releases.Merge(data, releases.FromGitHub(list), opts)
}
