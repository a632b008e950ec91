package generate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cmmoran/cppgen/internal/model"
	"github.com/cmmoran/cppgen/pkg/generator"
	"github.com/cmmoran/cppgen/pkg/manifest"
	"github.com/cmmoran/cppgen/pkg/source"
)

// Generate renders opts.Input and writes every output below opts.OutDir.
// When opts.Manifest is set the result is recorded there; the model must then
// carry a version.
func Generate(ctx context.Context, opts *generator.Options) (*generator.Result, error) {
	res, g, err := Render(opts)
	if err != nil {
		return nil, err
	}
	l := slog.With("action", "generate", "model", res.Name)

	for _, out := range res.Outputs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(g.Opts.OutDir, out.Name)
		if err := write(path, out.Content); err != nil {
			return nil, err
		}
		l.With("file", path, "bytes", len(out.Content)).Info("wrote file")
	}

	if g.Opts.Manifest == "" {
		return res, nil
	}
	if res.Version == "" {
		return nil, fmt.Errorf("record %s: model has no version", res.Name)
	}
	m, err := manifest.Load(g.Opts.Manifest)
	if err != nil {
		return nil, err
	}
	if err := m.Record(manifest.Entry{
		Name:    res.Name,
		Version: res.Version,
		Header:  filepath.Join(g.Opts.OutDir, res.Header.Name),
		Source:  filepath.Join(g.Opts.OutDir, res.Source.Name),
	}); err != nil {
		return nil, err
	}
	if err := m.Save(g.Opts.Manifest); err != nil {
		return nil, err
	}
	l.With("manifest", g.Opts.Manifest, "version", res.Version).Info("recorded")
	return res, nil
}

// Render loads opts.Input and generates it in memory.
func Render(opts *generator.Options) (*generator.Result, *generator.Generator, error) {
	if opts.Input == "" {
		return nil, nil, fmt.Errorf("no input model given")
	}
	g, err := generator.NewWithOpts(opts)
	if err != nil {
		return nil, nil, err
	}
	f, err := model.Load(opts.Input)
	if err != nil {
		return nil, nil, err
	}
	res, err := g.Generate(f)
	if err != nil {
		return nil, nil, fmt.Errorf("generate %s: %w", opts.Input, err)
	}
	return res, g, nil
}

// write stores already rendered content verbatim at path.
func write(path string, content []byte) error {
	f, err := source.Create(path)
	if err != nil {
		return err
	}
	f.Write(string(content), 0, false)
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
