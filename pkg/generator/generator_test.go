package generator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/cppgen/internal/model"
)

// TestGenerateGolden renders the model.yaml of every archive under testdata
// with the options in the archive comment and compares each output with the
// archive file of the same name.
func TestGenerateGolden(ttt *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(ttt, err)
	require.NotEmpty(ttt, archives)

	for _, path := range archives {
		path := path
		ttt.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			t.Parallel()
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			opts := NewOptions()
			require.NoError(t, yaml.Unmarshal(ar.Comment, opts))

			files := map[string]string{}
			var modelData []byte
			for _, f := range ar.Files {
				if f.Name == "model.yaml" {
					modelData = f.Data
					continue
				}
				files[f.Name] = string(f.Data)
			}
			require.NotNil(t, modelData, "archive has no model.yaml")

			m, err := model.Decode(modelData, model.FormatYAML)
			require.NoError(t, err)
			g, err := NewWithOpts(opts)
			require.NoError(t, err)
			res, err := g.Generate(m)
			require.NoError(t, err)

			for _, out := range res.Outputs() {
				want, ok := files[out.Name]
				if !assert.Truef(t, ok, "unexpected output %s", out.Name) {
					continue
				}
				delete(files, out.Name)
				if diff := cmp.Diff(want, string(out.Content)); diff != "" {
					t.Errorf("%s mismatch (-want +got):\n%s", out.Name, diff)
				}
			}
			assert.Empty(t, files, "expected outputs that were not generated")
		})
	}
}

func TestGenerateGoEnums(t *testing.T) {
	g, err := New(WithGoEnums("levels.go", ""), WithExcludeTypes("Hidden"))
	require.NoError(t, err)
	assert.Equal(t, "enums", g.Opts.GoPackage, "package defaults when a mirror is requested")

	res, err := g.Generate(&model.File{
		Name:    "levels",
		Version: "2.1",
		Enums: []model.Enum{
			{Name: "Level", Items: []string{"Low", "High"}},
			{Name: "hidden", Items: []string{"X"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", res.Version)
	require.NotNil(t, res.GoEnums)
	assert.Equal(t, "levels.go", res.GoEnums.Name)
	assert.Len(t, res.Outputs(), 3)

	src := string(res.GoEnums.Content)
	assert.Contains(t, src, "type Level int")
	assert.Regexp(t, `LevelLevelCount\s+Level = 2`, src)
	assert.NotContains(t, src, "Hidden")
	assert.NotContains(t, string(res.Header.Content), "hidden")
}

func TestGenerateModelFileNames(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	res, err := g.Generate(&model.File{Header: "api/types.hh", Source: "types.cc"})
	require.NoError(t, err)
	assert.Equal(t, "generated", res.Name)
	assert.Equal(t, "api/types.hh", res.Header.Name)
	assert.Equal(t, "types.cc", res.Source.Name)
	assert.Equal(t, "// Code generated by cppgen. DO NOT EDIT.\n#pragma once\n", string(res.Header.Content))
	assert.Equal(t, "// Code generated by cppgen. DO NOT EDIT.\n#include \"types.hh\"\n", string(res.Source.Content))

	g, err = New(WithHeader("x.h"), WithSource("x.cpp"))
	require.NoError(t, err)
	res, err = g.Generate(&model.File{Header: "api/types.hh", Source: "types.cc"})
	require.NoError(t, err)
	assert.Equal(t, "x.h", res.Header.Name, "options win over the model")
	assert.Equal(t, "x.cpp", res.Source.Name)
}

func TestGenerateReportsTreeErrors(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	_, err = g.Generate(&model.File{Classes: []model.Class{{
		Name: "Bad",
		Members: model.Members{
			Methods: []model.Method{{Name: "F", Static: true, Const: true, Body: []string{}}},
		},
	}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "static method cannot be const")
}

func TestOptions(t *testing.T) {
	_, err := New(WithBraceStyle("gnu"))
	require.Error(t, err)

	o := NewOptions()
	WithExcludeTypes(" A ", "", "b")(o)
	require.NoError(t, o.Normalize())
	assert.Equal(t, []string{"A", "b"}, o.ExcludeTypes)

	l, err := o.Layout()
	require.NoError(t, err)
	assert.Equal(t, "    ", l.Indent)
	assert.Equal(t, "x.h", (&Options{Header: "x.h"}).HeaderName("ignored"))
	assert.Equal(t, "m.cpp", (&Options{}).SourceName("m"))
}

func TestGenerateKeepsDocsOnExternDeclarations(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	res, err := g.Generate(&model.File{
		Name:      "state",
		Variables: []model.Variable{{Name: "g_hits", Type: "int", Value: "0", Doc: "// hit counter"}},
		Arrays:    []model.Array{{Name: "g_table", Type: "int", Size: 2, Items: []string{"1", "2"}, Doc: "// lookup"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by cppgen. DO NOT EDIT.\n#pragma once\n\n"+
		"// hit counter\nextern int g_hits;\n// lookup\nextern int g_table[2];\n", string(res.Header.Content))
	assert.Equal(t, "// Code generated by cppgen. DO NOT EDIT.\n#include \"state.h\"\n\n"+
		"// hit counter\nint g_hits = 0;\n// lookup\nint g_table[2] = {1, 2};\n", string(res.Source.Content))
}
