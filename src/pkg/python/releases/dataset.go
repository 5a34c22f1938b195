package releases

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/fs"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

// DefaultDownloadBase is where release file locators are resolved against.
const DefaultDownloadBase = "https://github.com/astral-sh/python-build-standalone/releases/download"

// Entry is the download information recorded for one version and triple. File and SHA
// are release relative locators such as 20220227/cpython-3.10.2+20220227-...tar.zst.
type Entry struct {
	File string `json:"file"`
	SHA  string `json:"sha,omitempty"`
}

// DownloadURL expands the file locator against base.
func (e Entry) DownloadURL(base string) string {
	return joinURL(base, e.File)
}

// ChecksumURL expands the checksum locator against base, or returns "" when none is known.
func (e Entry) ChecksumURL(base string) string {
	if e.SHA == "" {
		return ""
	}
	return joinURL(base, e.SHA)
}

func (e Entry) fromRelease(releaseName string) bool {
	return strings.HasPrefix(e.File, releaseName+"/")
}

func joinURL(base, locator string) string {
	return strings.TrimSuffix(base, "/") + "/" + locator
}

// Dataset maps version -> triple -> entry.
type Dataset map[string]map[string]*Entry

// Get returns the entry for a version and triple.
func (d Dataset) Get(version, triple string) (*Entry, bool) {
	entry := d[version][triple]
	return entry, entry != nil
}

func (d Dataset) entry(version, triple string) *Entry {
	triples := d[version]
	if triples == nil {
		triples = make(map[string]*Entry)
		d[version] = triples
	}
	entry := triples[triple]
	if entry == nil {
		entry = &Entry{}
		triples[triple] = entry
	}
	return entry
}

// Len returns the number of entries across all versions.
func (d Dataset) Len() (n int) {
	for _, triples := range d {
		n += len(triples)
	}
	return
}

// Versions returns every version in the dataset, newest first.
func (d Dataset) Versions() ([]string, error) {
	collection := make(semver.Collection, 0, len(d))
	for version := range d {
		v, err := semver.NewVersion(version)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset contains invalid version %s", version)
		}
		collection = append(collection, v)
	}
	sort.Sort(sort.Reverse(collection))

	versions := make([]string, len(collection))
	for i, v := range collection {
		versions[i] = v.Original()
	}
	return versions, nil
}

// Triples returns the triples recorded for version, sorted.
func (d Dataset) Triples(version string) []string {
	triples := make([]string, 0, len(d[version]))
	for triple := range d[version] {
		triples = append(triples, triple)
	}
	sort.Strings(triples)
	return triples
}

// Resolve finds the newest version matching constraint that has a build for triple.
// An exact dataset version always matches itself. Prereleases are only considered when
// the constraint names one.
func (d Dataset) Resolve(constraint, triple string) (version string, entry Entry, err error) {
	if _, ok := d[constraint]; ok {
		e, ok := d.Get(constraint, triple)
		if !ok {
			return "", Entry{}, errors.Errorf("no pre-built available for architecture %s", triple)
		}
		return constraint, *e, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return "", Entry{}, errors.Wrapf(err, "invalid version constraint %s", constraint)
	}

	versions, err := d.Versions()
	if err != nil {
		return "", Entry{}, err
	}

	prereleases := strings.Contains(constraint, "-")

	matched := false
	for _, candidate := range versions {
		v, err := semver.NewVersion(candidate)
		if err != nil {
			return "", Entry{}, err
		}
		if (v.Prerelease() != "" && !prereleases) || !c.Check(v) {
			continue
		}
		matched = true
		if e, ok := d.Get(candidate, triple); ok {
			return candidate, *e, nil
		}
	}

	if !matched {
		return "", Entry{}, errors.Errorf("no pre-built available for version %s", constraint)
	}
	return "", Entry{}, errors.Errorf("no pre-built available for architecture %s", triple)
}

// Load reads a dataset from path. A missing file yields an empty dataset.
func Load(path string) (Dataset, error) {
	if !fs.Exists(path) {
		print.Verb("no dataset at", path, "starting from scratch")
		return Dataset{}, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset")
	}

	data := Dataset{}
	if err := json.Unmarshal(contents, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", path)
	}
	if err := data.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %s", path)
	}

	print.Verb("loaded dataset from", path, "with", data.Len(), "entries")
	return data, nil
}

func (d Dataset) validate() error {
	for version, triples := range d {
		if triples == nil {
			return errors.Errorf("version %s has no triples", version)
		}
		for triple, entry := range triples {
			if entry == nil || entry.File == "" {
				return errors.Errorf("version %s triple %s has no file", version, triple)
			}
		}
	}
	return nil
}

// Save pretty prints the dataset and replaces the file at path in one step.
func Save(path string, data Dataset) error {
	contents, err := Marshal(data)
	if err != nil {
		return err
	}

	if err := fs.WriteFileAtomic(path, contents, fs.PermDirShared, fs.PermFileShared); err != nil {
		return errors.Wrap(err, "failed to write dataset")
	}

	print.Verb("saved dataset to", path, "with", data.Len(), "entries")
	return nil
}

// Marshal renders the dataset exactly as Save writes it.
func Marshal(data Dataset) ([]byte, error) {
	contents, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal dataset")
	}
	return append(contents, '\n'), nil
}
