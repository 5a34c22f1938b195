package config

import (
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sampctl/configor"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/fs"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
	"github.com/moonrepo/plugins/src/pkg/python/releases"
)

// Config represents the settings shared by every command
// nolint:lll
type Config struct {
	ReleasesRepo string `json:"releases_repo" yaml:"releases_repo" env:"MOONSCRIPTS_RELEASES_REPO"` // owner/repo publishing the python builds
	DatasetPath  string `json:"dataset_path"  yaml:"dataset_path"  env:"MOONSCRIPTS_DATASET_PATH"`  // dataset location, relative to the repository root
	DownloadBase string `json:"download_base" yaml:"download_base" env:"MOONSCRIPTS_DOWNLOAD_BASE"` // base URL release locators are resolved against
	PerPage      int    `json:"per_page"      yaml:"per_page"      env:"MOONSCRIPTS_PER_PAGE"`      // page size for full rebuilds
	TasksPerJob  int    `json:"tasks_per_job" yaml:"tasks_per_job" env:"MOONSCRIPTS_TASKS_PER_JOB"` // CI tasks handled by one job
	GitHubAPI    string `json:"github_api"    yaml:"github_api"    env:"MOONSCRIPTS_GITHUB_API"`    // API base URL, empty for api.github.com

	GitHubToken  string `json:"-" yaml:"-" env:"GITHUB_TOKEN"`  // optional, raises the API rate limit
	GitHubOutput string `json:"-" yaml:"-" env:"GITHUB_OUTPUT"` // set by GitHub Actions
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ReleasesRepo: "astral-sh/python-build-standalone",
		DatasetPath:  "tools/python/releases.json",
		DownloadBase: releases.DefaultDownloadBase,
		PerPage:      100,
		TasksPerJob:  10,
	}
}

// Files returns the configuration files looked up from dir, in priority order.
func Files(dir string) []string {
	return []string{
		filepath.Join(dir, ".moonscripts.json"),
		filepath.Join(dir, ".moonscripts.yaml"),
		filepath.Join(fs.ConfigDir(), "config.json"),
	}
}

// Load reads the first configuration file found for dir, applies environment overrides and
// fills anything left unset from Default.
func Load(dir string) (cfg *Config, err error) {
	cfg = new(Config)

	err = godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !os.IsNotExist(err) {
		print.Warn("Failed to load .env:", err)
	}

	var files []string
	for _, file := range Files(dir) {
		if fs.Exists(file) {
			files = append(files, file)
			break
		}
	}

	if len(files) > 0 {
		cnfgr := configor.New(&configor.Config{
			EnvironmentPrefix:    "MOONSCRIPTS",
			ErrorOnUnmatchedKeys: true,
		})
		if err = cnfgr.Load(cfg, files...); err != nil {
			return nil, errors.Wrap(err, "failed to load configuration")
		}
	} else if err = applyEnvironment(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration from environment")
	}

	if err = mergo.Merge(cfg, Default()); err != nil {
		return nil, errors.Wrap(err, "failed to apply default configuration")
	}

	if cfg.GitHubToken == "" {
		cfg.GitHubToken = os.Getenv("GH_TOKEN")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		print.Verb("Using configuration from", files[0])
	}
	print.Verb("Using configuration:", pretty.Sprint(cfg.redacted()))

	return cfg, nil
}

// Validate checks the configuration values that cannot be defaulted.
func (c Config) Validate() error {
	owner, repo := c.Repository()
	if owner == "" || repo == "" {
		return errors.Errorf("releases_repo must be in owner/repo form, got %q", c.ReleasesRepo)
	}
	if c.PerPage < 1 || c.PerPage > 100 {
		return errors.Errorf("per_page must be between 1 and 100, got %d", c.PerPage)
	}
	if c.TasksPerJob < 1 {
		return errors.Errorf("tasks_per_job must be positive, got %d", c.TasksPerJob)
	}
	return nil
}

// Repository splits ReleasesRepo into owner and name.
func (c Config) Repository() (owner, repo string) {
	parts := strings.Split(c.ReleasesRepo, "/")
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

func (c Config) redacted() Config {
	if c.GitHubToken != "" {
		c.GitHubToken = "<redacted>"
	}
	return c
}
