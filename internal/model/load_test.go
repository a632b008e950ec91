package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
version: 1.2.0
namespace: app
includes: ["<cstddef>"]
classes:
  - name: Counter
    enums:
      - name: Mode
        items: [Off, On]
    variables:
      - name: m_count
        type: size_t
        getter: true
    scopes:
      - label: private
        arrays:
          - name: s_limits
            type: int
            static: true
            items: ["1", "2"]
`

const tomlDoc = `
version = "1.2.0"
namespace = "app"
includes = ["<cstddef>"]

[[classes]]
name = "Counter"

[[classes.enums]]
name = "Mode"
items = ["Off", "On"]

[[classes.variables]]
name = "m_count"
type = "size_t"
getter = true

[[classes.scopes]]
label = "private"

[[classes.scopes.arrays]]
name = "s_limits"
type = "int"
static = true
items = ["1", "2"]
`

const jsonDoc = `{
  "version": "1.2.0",
  "namespace": "app",
  "includes": ["<cstddef>"],
  "classes": [{
    "name": "Counter",
    "enums": [{"name": "Mode", "items": ["Off", "On"]}],
    "variables": [{"name": "m_count", "type": "size_t", "getter": true}],
    "scopes": [{
      "label": "private",
      "arrays": [{"name": "s_limits", "type": "int", "static": true, "items": ["1", "2"]}]
    }]
  }]
}`

func expectedCounter() *File {
	return &File{
		Version:   "1.2.0",
		Namespace: "app",
		Includes:  []string{"<cstddef>"},
		Classes: []Class{{
			Name: "Counter",
			Members: Members{
				Enums:     []Enum{{Name: "Mode", Items: []string{"Off", "On"}}},
				Variables: []Variable{{Name: "m_count", Type: "size_t", Getter: true}},
				Scopes: []Scope{{
					Label: "private",
					Members: Members{
						Arrays: []Array{{Name: "s_limits", Type: "int", Static: true, Items: []string{"1", "2"}}},
					},
				}},
			},
		}},
	}
}

func TestDecode(ttt *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: yamlDoc, format: FormatYAML},
		{name: "toml", data: tomlDoc, format: FormatTOML},
		{name: "json", data: jsonDoc, format: FormatJSON},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			if diff := cmp.Diff(expectedCounter(), got); diff != "" {
				t.Errorf("model mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, "v1.2.0", got.CanonicalVersion())
		})
	}
}

func TestDecodeRejects(ttt *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		errMsg string
	}{
		{name: "unknown yaml key", data: "classes:\n  - name: A\n    colour: red\n", format: FormatYAML, errMsg: "colour"},
		{name: "unknown toml key", data: "[[classes]]\nname = \"A\"\ncolour = \"red\"\n", format: FormatTOML, errMsg: "colour"},
		{name: "unknown json key", data: `{"classes":[{"name":"A","colour":"red"}]}`, format: FormatJSON, errMsg: "colour"},
		{name: "bad version", data: "version: one\n", format: FormatYAML, errMsg: "semantic version"},
		{name: "unnamed nested class", data: "classes:\n  - name: A\n    classes:\n      - struct: true\n", format: FormatYAML, errMsg: `class without name in "A"`},
		{name: "member without type", data: "classes:\n  - name: A\n    variables:\n      - name: x\n", format: FormatYAML, errMsg: "member variable of A x: missing type"},
		{name: "unknown format", data: "", format: Format("ini"), errMsg: "unsupported model format"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "counter", f.Name, "name defaults to the file stem")

	_, err = Load(filepath.Join(dir, "counter.ini"))
	require.ErrorContains(t, err, "unsupported model file extension")

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
