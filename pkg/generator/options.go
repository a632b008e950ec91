package generator

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/cmmoran/cppgen/pkg/source"
)

// Options control generation and output placement.
//
// Input        – model file (.yaml, .yml, .toml or .json).
// OutDir       – directory receiving the generated files.
// Header       – header file name, defaults to <model name>.h.
// Source       – source file name, defaults to <model name>.cpp.
// Indent       – indentation unit, four spaces by default.
// BraceStyle   – "allman" (default) or "attached".
// ExcludeTypes – names of classes and enums to skip (case‑insensitive).
// NoAccessors  – do not generate getters and element accessors.
// GoEnums      – file name of the Go mirror of all enums; empty disables it.
// GoPackage    – package clause of the Go mirror.
// Manifest     – manifest recording generated outputs; empty disables it.
type Options struct {
	Input        string   `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	OutDir       string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	Header       string   `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty" mapstructure:"header,omitempty"`
	Source       string   `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty" mapstructure:"source,omitempty"`
	Indent       string   `json:"indent,omitempty" yaml:"indent,omitempty" toml:"indent,omitempty" mapstructure:"indent,omitempty"`
	BraceStyle   string   `json:"brace_style,omitempty" yaml:"brace_style,omitempty" toml:"brace_style,omitempty" mapstructure:"brace_style,omitempty"`
	ExcludeTypes []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	NoAccessors  bool     `json:"no_accessors,omitempty" yaml:"no_accessors,omitempty" toml:"no_accessors,omitempty" mapstructure:"no_accessors,omitempty"`
	GoEnums      string   `json:"go_enums,omitempty" yaml:"go_enums,omitempty" toml:"go_enums,omitempty" mapstructure:"go_enums,omitempty"`
	GoPackage    string   `json:"go_package,omitempty" yaml:"go_package,omitempty" toml:"go_package,omitempty" mapstructure:"go_package,omitempty"`
	Manifest     string   `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:     "generated",
		Indent:     "    ",
		BraceStyle: source.BraceAllman.String(),
	}
}

// Normalize fills defaults and validates the layout settings.
func (o *Options) Normalize() error {
	if len(o.OutDir) == 0 {
		o.OutDir = "generated"
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if len(o.Indent) == 0 {
		o.Indent = "    "
	}
	if _, err := source.ParseBraceStyle(o.BraceStyle); err != nil {
		return err
	}
	if o.GoEnums != "" && o.GoPackage == "" {
		o.GoPackage = "enums"
	}
	cleaned := o.ExcludeTypes[:0]
	for _, n := range o.ExcludeTypes {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	o.ExcludeTypes = cleaned
	return nil
}

// Layout returns the source layout selected by Indent and BraceStyle.
func (o *Options) Layout() (source.Layout, error) {
	braces, err := source.ParseBraceStyle(o.BraceStyle)
	if err != nil {
		return source.Layout{}, errors.Wrap(err, "layout")
	}
	l := source.DefaultLayout()
	if o.Indent != "" {
		l.Indent = o.Indent
	}
	l.Braces = braces
	return l, nil
}

// HeaderName returns the header file name for a model called name.
func (o *Options) HeaderName(name string) string {
	if o.Header != "" {
		return o.Header
	}
	return name + ".h"
}

// SourceName returns the source file name for a model called name.
func (o *Options) SourceName(name string) string {
	if o.Source != "" {
		return o.Source
	}
	return name + ".cpp"
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(p string) Option      { return func(o *Options) { o.Input = p } }
func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithHeader(f string) Option     { return func(o *Options) { o.Header = f } }
func WithSource(f string) Option     { return func(o *Options) { o.Source = f } }
func WithIndent(s string) Option     { return func(o *Options) { o.Indent = s } }
func WithBraceStyle(s string) Option { return func(o *Options) { o.BraceStyle = s } }
func WithNoAccessors() Option        { return func(o *Options) { o.NoAccessors = true } }
func WithManifest(p string) Option   { return func(o *Options) { o.Manifest = p } }
func WithGoEnums(file, pkg string) Option {
	return func(o *Options) { o.GoEnums, o.GoPackage = file, pkg }
}
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}
