package commands

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/urfave/cli.v1"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

var globalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "output all detailed information - useful for debugging",
	},
	cli.StringFlag{
		Name:  "dir",
		Value: ".",
		Usage: "working directory - configuration and relative paths are resolved from its repository root",
	},
}

// NewApp builds the command tree.
func NewApp(version string) *cli.App {
	app := cli.NewApp()

	app.Authors = []cli.Author{
		{
			Name:  "moonrepo",
			Email: "hello@moonrepo.dev",
		},
	}
	app.Name = "moonscripts"
	app.Usage = "Build and release automation for the moon plugins repository."
	app.Version = version
	app.ErrWriter = os.Stderr

	//nolint:lll
	app.Commands = []cli.Command{
		{
			Name:        "python-releases",
			Usage:       "moonscripts python-releases [--full]",
			Description: "Scrapes python-build-standalone releases and merges their archives into the python dataset, keyed by version and target triple.",
			Action:      pythonReleases,
			Flags:       append(globalFlags, pythonReleasesFlags...),
		},
		{
			Name:        "python-list",
			Usage:       "moonscripts python-list",
			Description: "Lists every version in the python dataset with the triples it has builds for.",
			Action:      pythonList,
			Flags:       append(globalFlags, pythonListFlags...),
		},
		{
			Name:        "python-lookup",
			Usage:       "moonscripts python-lookup <version> [--triple triple]",
			Description: "Resolves a version or version constraint to the download and checksum URL for a triple, defaulting to the host.",
			Action:      pythonLookup,
			Flags:       append(globalFlags, pythonLookupFlags...),
		},
		{
			Name:        "ci-jobs",
			Usage:       "moonscripts ci-jobs",
			Description: "Counts the tasks affected by the current changes and writes the number of CI jobs needed to GITHUB_OUTPUT.",
			Action:      ciJobs,
			Flags:       append(globalFlags, ciJobsFlags...),
		},
		{
			Name:        "docs",
			Usage:       "moonscripts docs > documentation.md",
			Description: "Generate documentation in markdown format and print to standard out.",
			Action: func(c *cli.Context) error {
				_, err := fmt.Fprint(c.App.Writer, GenerateDocs(c.App))
				return err
			},
		},
	}

	app.Flags = globalFlags
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			print.SetVerbose()
			print.Verb("Verbose logging active")
		}
		if runtime.GOOS != "windows" {
			print.SetColoured()
		}
		return nil
	}
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return err
	}

	return app
}

// Run executes the CLI with the given arguments.
func Run(args []string, version string) error {
	return NewApp(version).Run(args)
}
