package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/cppgen/pkg/action/generate"
	"github.com/cmmoran/cppgen/pkg/generator"
)

// Check regenerates opts.Input in memory and diffs every output against the
// file on disk. The result is empty when everything is up to date.
func Check(ctx context.Context, opts *generator.Options) (string, error) {
	res, g, err := generate.Render(opts)
	if err != nil {
		return "", err
	}
	l := slog.With("action", "check", "model", res.Name)

	var sb strings.Builder
	for _, out := range res.Outputs() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		path := filepath.Join(g.Opts.OutDir, out.Name)
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		diff := cmp.Diff(string(current), string(out.Content))
		if diff == "" {
			l.With("file", path).Debug("up to date")
			continue
		}
		l.With("file", path).Info("out of date")
		fmt.Fprintf(&sb, "%s (-current +generated):\n%s", path, diff)
	}
	return sb.String(), nil
}
