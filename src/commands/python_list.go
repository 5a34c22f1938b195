package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/moonrepo/plugins/src/pkg/python/releases"
)

var pythonListFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "input, i",
		Usage: "dataset file to read - by default, the configured dataset_path",
	},
}

var pythonLookupFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "input, i",
		Usage: "dataset file to read - by default, the configured dataset_path",
	},
	cli.StringFlag{
		Name:  "triple, t",
		Usage: "target triple to look up - by default, the host triple",
	},
	cli.StringFlag{
		Name:  "format, f",
		Value: "json",
		Usage: "output format, either `json` or `yaml`",
	},
}

// lookupResult is what python-lookup prints.
type lookupResult struct {
	Version     string `json:"version" yaml:"version"`
	Triple      string `json:"triple" yaml:"triple"`
	DownloadURL string `json:"download_url" yaml:"download_url"`
	ChecksumURL string `json:"checksum_url,omitempty" yaml:"checksum_url,omitempty"`
}

func loadDatasetFlag(c *cli.Context, env commandEnv) (releases.Dataset, error) {
	input := c.String("input")
	if input == "" {
		input = env.Config.DatasetPath
	}
	path, err := env.path(input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve dataset path")
	}
	return releases.Load(path)
}

func pythonList(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	data, err := loadDatasetFlag(c, env)
	if err != nil {
		return err
	}

	return renderDataset(c.App.Writer, data)
}

func renderDataset(w io.Writer, data releases.Dataset) error {
	versions, err := data.Versions()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Version", "Triples", "Checksums", "Release"})

	for _, version := range versions {
		triples := data.Triples(version)
		checksums := 0
		release := ""
		for _, triple := range triples {
			entry, ok := data.Get(version, triple)
			if !ok {
				continue
			}
			if entry.SHA != "" {
				checksums++
			}
			if release == "" {
				release = strings.SplitN(entry.File, "/", 2)[0]
			}
		}
		t.AppendRow(table.Row{version, strings.Join(triples, "\n"), fmt.Sprintf("%d/%d", checksums, len(triples)), release})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d versions", len(versions)), fmt.Sprintf("%d entries", data.Len()), ""})
	t.Render()

	return nil
}

func pythonLookup(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one version argument")
	}

	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	data, err := loadDatasetFlag(c, env)
	if err != nil {
		return err
	}

	triple := c.String("triple")
	if triple == "" {
		triple, err = releases.HostTriple(runtime.GOOS, runtime.GOARCH)
		if err != nil {
			return err
		}
	}

	version, entry, err := data.Resolve(c.Args().First(), triple)
	if err != nil {
		return err
	}

	return writeLookup(c.App.Writer, c.String("format"), lookupResult{
		Version:     version,
		Triple:      triple,
		DownloadURL: entry.DownloadURL(env.Config.DownloadBase),
		ChecksumURL: entry.ChecksumURL(env.Config.DownloadBase),
	})
}

func writeLookup(w io.Writer, format string, result lookupResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown format %q, expected json or yaml", format)
	}
}
