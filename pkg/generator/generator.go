package generator

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cmmoran/cppgen/internal/builder"
	"github.com/cmmoran/cppgen/internal/goenum"
	"github.com/cmmoran/cppgen/internal/model"
	"github.com/cmmoran/cppgen/pkg/cpp"
	"github.com/cmmoran/cppgen/pkg/source"
)

const banner = "// Code generated by cppgen. DO NOT EDIT."

// Output is one generated file, named relative to Options.OutDir.
type Output struct {
	Name    string
	Content []byte
}

// Result holds everything generated from one model.
type Result struct {
	Name    string
	Version string
	Header  Output
	Source  Output
	GoEnums *Output
}

// Outputs lists the generated files in writing order.
func (r *Result) Outputs() []Output {
	out := []Output{r.Header, r.Source}
	if r.GoEnums != nil {
		out = append(out, *r.GoEnums)
	}
	return out
}

// Generator renders model files into a header/source pair.
type Generator struct {
	Opts   Options
	layout source.Layout
	log    *slog.Logger
}

// New creates a Generator from functional options.
func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Generator, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	layout, err := opts.Layout()
	if err != nil {
		return nil, err
	}
	return &Generator{
		Opts:   *opts,
		layout: layout,
		log:    slog.Default().With("component", "generator"),
	}, nil
}

// Generate builds the element tree of f and renders it.
func (g *Generator) Generate(f *model.File) (*Result, error) {
	bopts := []builder.Option{
		builder.WithExcludeTypes(g.Opts.ExcludeTypes...),
		builder.WithLogger(g.log),
	}
	if g.Opts.NoAccessors {
		bopts = append(bopts, builder.WithoutAccessors())
	}
	u, err := builder.New(bopts...).Build(f)
	if err != nil {
		return nil, err
	}

	name := f.Name
	if name == "" {
		name = "generated"
	}
	res := &Result{
		Name:    name,
		Version: f.CanonicalVersion(),
		Header:  Output{Name: g.headerName(f, name)},
		Source:  Output{Name: g.sourceName(f, name)},
	}

	header, err := source.Capture(g.layout, func(w source.Writer) error {
		return g.writeHeader(w, u)
	})
	if err != nil {
		return nil, err
	}
	res.Header.Content = []byte(header)

	src, err := source.Capture(g.layout, func(w source.Writer) error {
		return g.writeSource(w, u, res.Header.Name)
	})
	if err != nil {
		return nil, err
	}
	res.Source.Content = []byte(src)

	if g.Opts.GoEnums != "" {
		data, err := goenum.Render(g.Opts.GoPackage, u.AllEnums())
		if err != nil {
			return nil, err
		}
		res.GoEnums = &Output{Name: g.Opts.GoEnums, Content: data}
	}
	g.log.With("model", name, "header", res.Header.Name, "source", res.Source.Name).Debug("generated")
	return res, nil
}

func (g *Generator) headerName(f *model.File, name string) string {
	if g.Opts.Header == "" && f.Header != "" {
		return f.Header
	}
	return g.Opts.HeaderName(name)
}

func (g *Generator) sourceName(f *model.File, name string) string {
	if g.Opts.Source == "" && f.Source != "" {
		return f.Source
	}
	return g.Opts.SourceName(name)
}

func (g *Generator) writeHeader(w source.Writer, u *builder.Unit) error {
	w.Line(banner)
	w.Line("#pragma once")
	if len(u.Model.Includes) > 0 {
		w.Newline(1)
		for _, inc := range u.Model.Includes {
			w.Line("#include " + includeSpec(inc))
		}
	}

	var parts []string
	for _, e := range u.Enums {
		if err := g.piece(&parts, e.Render); err != nil {
			return err
		}
	}
	if err := g.piece(&parts, func(w source.Writer) error {
		for _, v := range u.Variables {
			if err := headerVariable(w, v); err != nil {
				return err
			}
		}
		for _, a := range u.Arrays {
			if err := headerArray(w, a); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if err := g.piece(&parts, func(w source.Writer) error {
		for _, fn := range u.Functions {
			if fn.Config().Static {
				continue
			}
			if err := fn.RenderDeclaration(w); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	for _, c := range u.Classes {
		if err := g.piece(&parts, c.RenderDeclaration); err != nil {
			return err
		}
	}
	return g.namespace(w, u.Model.Namespace, parts)
}

func (g *Generator) writeSource(w source.Writer, u *builder.Unit, header string) error {
	w.Line(banner)
	w.Line("#include " + includeSpec(filepath.Base(header)))

	var parts []string
	if err := g.piece(&parts, func(w source.Writer) error {
		for _, v := range u.Variables {
			c := v.Config()
			if c.Extern || c.Constexpr || c.Const && !c.Static {
				continue
			}
			if err := v.Render(w); err != nil {
				return err
			}
		}
		for _, a := range u.Arrays {
			c := a.Config()
			if c.Extern || c.Const && !c.Static {
				continue
			}
			if err := a.Render(w); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	for _, fn := range u.Functions {
		c := fn.Config()
		switch {
		case c.Static:
			if err := g.piece(&parts, fn.Render); err != nil {
				return err
			}
		case c.Body != nil && !c.Constexpr && !c.Inline:
			if err := g.piece(&parts, fn.RenderDefinition); err != nil {
				return err
			}
		}
	}
	for _, c := range u.Classes {
		if err := g.piece(&parts, c.RenderDefinition); err != nil {
			return err
		}
	}
	return g.namespace(w, u.Model.Namespace, parts)
}

// headerVariable declares a free variable for other translation units.
// Mutable variables are declared extern and defined in the source.
func headerVariable(w source.Writer, v *cpp.Variable) error {
	c := v.Config()
	switch {
	case c.Extern, c.Constexpr, c.Const && !c.Static:
		return v.Render(w)
	case c.Static:
		return nil
	}
	return cpp.NewVariable(cpp.VariableConfig{
		Name:          c.Name,
		Type:          c.Type,
		Extern:        true,
		Documentation: c.Documentation,
	}).Render(w)
}

func headerArray(w source.Writer, a *cpp.Array) error {
	c := a.Config()
	switch {
	case c.Extern, c.Const && !c.Static:
		return a.Render(w)
	case c.Static:
		return nil
	}
	return cpp.NewArray(cpp.ArrayConfig{
		Name:          c.Name,
		Type:          c.Type,
		Extern:        true,
		Size:          c.Size,
		Documentation: c.Documentation,
	}).Render(w)
}

// piece renders fn at depth zero and appends the result, without trailing
// blank lines, to parts. Empty output is dropped.
func (g *Generator) piece(parts *[]string, fn func(source.Writer) error) error {
	out, err := source.Capture(g.layout, fn)
	if err != nil {
		return err
	}
	out = strings.TrimRight(out, g.layout.Endline)
	if out != "" {
		*parts = append(*parts, out)
	}
	return nil
}

// namespace writes parts separated by blank lines, inside a namespace block
// when ns is set.
func (g *Generator) namespace(w source.Writer, ns string, parts []string) error {
	if len(parts) == 0 {
		return nil
	}
	w.Newline(1)
	emit := func(w source.Writer) error {
		for i, p := range parts {
			if i > 0 {
				w.Newline(1)
			}
			for _, line := range strings.Split(p, g.layout.Endline) {
				if line == "" {
					w.Newline(1)
					continue
				}
				w.Line(line)
			}
		}
		return nil
	}
	if ns == "" {
		return emit(w)
	}
	return w.Block("namespace "+ns, "", emit)
}

func includeSpec(inc string) string {
	inc = strings.TrimSpace(inc)
	if strings.HasPrefix(inc, "<") || strings.HasPrefix(inc, `"`) {
		return inc
	}
	return `"` + inc + `"`
}
