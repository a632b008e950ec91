package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > w.after {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestBlock(ttt *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		render func(Writer) error
		want   string
	}{
		{
			name:   "allman block with postfix",
			layout: DefaultLayout(),
			render: func(w Writer) error {
				return w.Block("struct A", ";", func(w Writer) error {
					w.Line("int x;")
					return nil
				})
			},
			want: "struct A\n{\n    int x;\n};\n",
		},
		{
			name:   "attached braces",
			layout: Layout{Indent: "\t", Endline: "\n", Braces: BraceAttached},
			render: func(w Writer) error {
				return w.Block("void f()", "", func(w Writer) error {
					w.Line("return;")
					return nil
				})
			},
			want: "void f() {\n\treturn;\n}\n",
		},
		{
			name:   "nested blocks inherit depth",
			layout: DefaultLayout(),
			render: func(w Writer) error {
				return w.Block("namespace n", "", func(w Writer) error {
					return w.Block("class C", ";", func(w Writer) error {
						w.Label("public")
						w.Line("C();")
						return nil
					})
				})
			},
			want: "namespace n\n{\n    class C\n    {\n    public:\n        C();\n    };\n}\n",
		},
		{
			name:   "headerless block and blank lines",
			layout: DefaultLayout(),
			render: func(w Writer) error {
				w.Line("int a[] =")
				err := w.Block("", ";", func(w Writer) error {
					w.Line("1,")
					w.Newline(1)
					w.Line("2")
					return nil
				})
				return err
			},
			want: "int a[] =\n{\n    1,\n\n    2\n};\n",
		},
		{
			name:   "braceless indent and relative write",
			layout: DefaultLayout(),
			render: func(w Writer) error {
				return w.Indent(func(w Writer) error {
					w.Write("a", 0, false)
					w.Write("b", 0, true)
					w.Write("c", -5, true)
					return nil
				})
			},
			want: "    a    b\nc\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := Capture(tt.layout, tt.render)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockClosesOnError(t *testing.T) {
	boom := errors.New("boom")
	got, err := Capture(DefaultLayout(), func(w Writer) error {
		return w.Block("void f()", "", func(w Writer) error {
			w.Line("partial();")
			return boom
		})
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "void f()\n{\n    partial();\n}\n", got)
}

func TestBlockClosesOnPanic(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)
	require.Panics(t, func() {
		_ = f.Block("void f()", "", func(w Writer) error {
			panic("body failed")
		})
	})
	assert.Equal(t, "void f()\n{\n}\n", buf.String())
}

func TestStickyError(t *testing.T) {
	fw := &failingWriter{after: 1}
	f := New(fw)
	f.Line("first")
	f.Line("second")
	f.Line("third")
	require.Error(t, f.Err())
	assert.Equal(t, 2, fw.n, "writes stop after the first failure")
	require.Error(t, f.Close())
}

func TestCreateAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.h")
	f, err := Create(path, WithIndent("  "))
	require.NoError(t, err)
	require.NoError(t, f.Block("struct S", ";", func(w Writer) error {
		w.Line("int v;")
		return nil
	}))
	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "close is idempotent")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "struct S\n{\n  int v;\n};\n", string(data))

	f.Line("late")
	require.ErrorIs(t, f.Err(), os.ErrClosed)
}

func TestDedent(t *testing.T) {
	got := Dedent(`
		/// Doc line
		///   indented
		
		/// tail
	`)
	assert.Equal(t, []string{"/// Doc line", "///   indented", "", "/// tail"}, got)
	assert.Empty(t, Dedent("   \n  "))
	assert.Equal(t, []string{"a", "  b"}, Dedent("\r\n    a\r\n      b\r\n"))
}

func TestParseBraceStyle(t *testing.T) {
	for in, want := range map[string]BraceStyle{"": BraceAllman, "ANSI": BraceAllman, "kr": BraceAttached, "attached": BraceAttached} {
		got, err := ParseBraceStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBraceStyle("gnu")
	require.Error(t, err)
}
