package cpp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cppgen/pkg/source"
)

func capture(t *testing.T, fn func(source.Writer) error) string {
	t.Helper()
	out, err := source.Capture(source.DefaultLayout(), fn)
	require.NoError(t, err)
	return out
}

func TestQualifiedNames(t *testing.T) {
	outer := NewClass(ClassConfig{Name: "Outer"})
	inner := NewClass(ClassConfig{Name: "Inner"})
	section := NewScope(ScopeConfig{Label: Private})
	v := NewVariable(VariableConfig{Name: "m_x", Type: Raw("int")})

	require.NoError(t, outer.AddClass(inner))
	require.NoError(t, inner.AddScope(section))
	require.NoError(t, section.AddVariable(v))

	assert.Equal(t, "", ParentQualifier(outer))
	assert.Equal(t, "Outer", FullyQualifiedName(outer))
	assert.Equal(t, "Outer::", ParentQualifier(inner))
	assert.Equal(t, "Outer::Inner::", ParentQualifier(v), "anonymous scopes are skipped")
	assert.Equal(t, "Outer::Inner::m_x", ScopedName(v, false))
	assert.Equal(t, "m_x", ScopedName(v, true))
	assert.Same(t, section, v.Parent())
}

func TestAttachRejectsReparenting(t *testing.T) {
	a := NewClass(ClassConfig{Name: "A"})
	b := NewClass(ClassConfig{Name: "B"})
	e := NewEnum(EnumConfig{Name: "Color"})

	require.NoError(t, a.AddEnum(e))
	err := b.AddEnum(e)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, err.Error(), `already owned by "A"`)
	assert.Empty(t, b.Enums())

	require.NoError(t, a.AddClass(b))
	err = b.AddClass(a)
	require.ErrorIs(t, err, ErrUsage)
	require.ErrorIs(t, a.AddClass(a), ErrUsage)
}

func TestTypeName(ttt *testing.T) {
	outer := NewClass(ClassConfig{Name: "Outer"})
	color := NewEnum(EnumConfig{Name: "Color"})
	require.NoError(ttt, outer.AddEnum(color))

	tests := []struct {
		name    string
		typ     TypeExpr
		local   bool
		want    string
		wantErr error
	}{
		{name: "raw", typ: Raw("size_t"), want: "size_t"},
		{name: "const ref", typ: &Type{Base: Raw("char"), Const: true, Ref: true}, want: "const char&"},
		{name: "static", typ: &Type{Base: Raw("int"), Static: true}, want: "static int"},
		{name: "template", typ: Template(Raw("std::vector"), &Type{Base: Raw("char"), Const: true}), want: "std::vector<const char>"},
		{name: "template with multiple args", typ: Template(Raw("std::map"), &Type{Base: Raw("char"), Const: true}, Raw("bool")), want: "std::map<const char, bool>"},
		{name: "qualified enum", typ: color, want: "Outer::Color"},
		{name: "local enum", typ: color, local: true, want: "Color"},
		{name: "template over element", typ: Template(Raw("std::vector"), color), want: "std::vector<Outer::Color>"},
		{name: "const and constexpr", typ: &Type{Base: Raw("int"), Const: true, Constexpr: true}, wantErr: ErrConfig},
		{name: "static and extern", typ: &Type{Base: Raw("char*"), Static: true, Extern: true}, wantErr: ErrConfig},
		{name: "empty raw", typ: Raw(" "), wantErr: ErrConfig},
		{name: "missing base", typ: &Type{Const: true}, wantErr: ErrConfig},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.TypeName(tt.local)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPass(t *testing.T) {
	c := NewClass(ClassConfig{Name: "S", Struct: true})
	require.NoError(t, c.AddVariable(NewVariable(VariableConfig{Name: "n", Type: Raw("int"), Static: true, Value: "1"})))

	assert.Equal(t, "struct S\n{\n    static int n;\n};\n", capture(t, func(w source.Writer) error {
		return Render(w, c, Declaration)
	}))
	assert.Equal(t, "int S::n = 1;\n\n", capture(t, func(w source.Writer) error {
		return Render(w, c, Definition)
	}))
	assert.Equal(t, "struct S\n{\n    static int n;\n};\n\nint S::n = 1;\n\n", capture(t, c.Render))

	_, err := source.Capture(source.DefaultLayout(), func(w source.Writer) error {
		return Render(w, c, Pass(42))
	})
	require.ErrorIs(t, err, ErrUsage)
}
