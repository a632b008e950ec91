package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Entry records one generated header/source pair.
type Entry struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Header  string `yaml:"header" json:"header"`
	Source  string `yaml:"source" json:"source"`
}

// Manifest tracks the versions of generated outputs.
type Manifest struct {
	CurrentVersion  string  `yaml:"current_version" json:"current_version"`
	PreviousVersion string  `yaml:"previous_version" json:"previous_version"`
	Entries         []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Record adds e, replacing an entry with the same name and version. The
// version pointers move only when e.Version differs from the current one.
// Entries stay ordered by name, then by semantic version.
func (m *Manifest) Record(e Entry) error {
	if !semver.IsValid(e.Version) {
		return fmt.Errorf("record %s: invalid version %q", e.Name, e.Version)
	}
	e.Version = semver.Canonical(e.Version)

	if m.CurrentVersion != e.Version {
		if m.CurrentVersion != "" {
			m.PreviousVersion = m.CurrentVersion
		}
		m.CurrentVersion = e.Version
	}

	if i := slices.IndexFunc(m.Entries, func(x Entry) bool {
		return x.Name == e.Name && x.Version == e.Version
	}); i >= 0 {
		m.Entries[i] = e
	} else {
		m.Entries = append(m.Entries, e)
	}

	slices.SortStableFunc(m.Entries, func(a, b Entry) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return semver.Compare(a.Version, b.Version)
	})
	return nil
}

// Lookup returns the entry recorded for name at version.
func (m *Manifest) Lookup(name, version string) (Entry, bool) {
	version = semver.Canonical(version)
	for _, e := range m.Entries {
		if e.Name == name && e.Version == version {
			return e, true
		}
	}
	return Entry{}, false
}

// Latest returns the highest recorded version of name.
func (m *Manifest) Latest(name string) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range m.Entries {
		if e.Name == name && (!found || semver.Compare(e.Version, best.Version) > 0) {
			best, found = e, true
		}
	}
	return best, found
}
