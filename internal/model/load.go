package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a model document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf infers the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Errorf("unsupported model file extension %q", filepath.Ext(path))
}

// Load reads and validates the model at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Decode parses data strictly: keys that do not map onto the model are
// errors rather than silently ignored.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "unmarshal yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(err, "unmarshal toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown toml keys: %v", undecoded)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "unmarshal json")
		}
	default:
		return nil, errors.Errorf("unsupported model format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// CanonicalVersion returns Version in canonical semantic-version form with a
// leading "v", or "" when no version is set.
func (f *File) CanonicalVersion() string {
	if f.Version == "" {
		return ""
	}
	v := f.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// Validate checks that every element is named and that Version, if set, is a
// semantic version.
func (f *File) Validate() error {
	if f.Version != "" && f.CanonicalVersion() == "" {
		return errors.Errorf("version %q is not a semantic version", f.Version)
	}
	for _, e := range f.Enums {
		if e.Name == "" {
			return errors.New("enum without name")
		}
	}
	for _, v := range f.Variables {
		if err := v.validate("variable"); err != nil {
			return err
		}
	}
	for _, a := range f.Arrays {
		if err := a.validate("array"); err != nil {
			return err
		}
	}
	for _, fn := range f.Functions {
		if fn.Name == "" {
			return errors.New("function without name")
		}
	}
	for _, c := range f.Classes {
		if err := c.validate(""); err != nil {
			return err
		}
	}
	return nil
}

func (v Variable) validate(where string) error {
	switch {
	case v.Name == "":
		return errors.Errorf("%s without name", where)
	case v.Type == "":
		return errors.Errorf("%s %s: missing type", where, v.Name)
	}
	return nil
}

func (a Array) validate(where string) error {
	switch {
	case a.Name == "":
		return errors.Errorf("%s without name", where)
	case a.Type == "":
		return errors.Errorf("%s %s: missing type", where, a.Name)
	}
	return nil
}

func (c Class) validate(qualifier string) error {
	if c.Name == "" {
		return errors.Errorf("class without name in %q", strings.TrimSuffix(qualifier, "::"))
	}
	return c.Members.validate(qualifier + c.Name + "::")
}

func (m Members) validate(qualifier string) error {
	for _, e := range m.Enums {
		if e.Name == "" {
			return errors.Errorf("enum without name in %q", strings.TrimSuffix(qualifier, "::"))
		}
	}
	for _, fn := range m.Methods {
		if fn.Name == "" {
			return errors.Errorf("method without name in %q", strings.TrimSuffix(qualifier, "::"))
		}
	}
	for _, v := range m.Variables {
		if err := v.validate("member variable of " + strings.TrimSuffix(qualifier, "::")); err != nil {
			return err
		}
	}
	for _, a := range m.Arrays {
		if err := a.validate("member array of " + strings.TrimSuffix(qualifier, "::")); err != nil {
			return err
		}
	}
	for _, c := range m.Classes {
		if err := c.validate(qualifier); err != nil {
			return err
		}
	}
	for _, s := range m.Scopes {
		q := qualifier
		if s.Name != "" {
			q += s.Name + "::"
		}
		if err := s.Members.validate(q); err != nil {
			return err
		}
	}
	return nil
}
