package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is the root Writer over an output sink. The first write error is kept
// and every later write is dropped.
type File struct {
	w      io.Writer
	c      io.Closer
	layout Layout
	err    error
	closed bool
}

var _ Writer = (*File)(nil)

// Option configures a File.
type Option func(*File)

func WithLayout(l Layout) Option         { return func(f *File) { f.layout = l } }
func WithIndent(indent string) Option    { return func(f *File) { f.layout.Indent = indent } }
func WithEndline(endline string) Option  { return func(f *File) { f.layout.Endline = endline } }
func WithBraceStyle(b BraceStyle) Option { return func(f *File) { f.layout.Braces = b } }

// New wraps w. The caller keeps ownership of w.
func New(w io.Writer, opts ...Option) *File {
	f := &File{
		w:      w,
		layout: DefaultLayout(),
	}
	for _, fn := range opts {
		fn(f)
	}
	f.layout = f.layout.normalize()
	return f
}

// Create opens path for writing, creating parent directories as needed. The
// returned File owns the handle and releases it on Close.
func Create(path string, opts ...Option) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	f := New(fh, opts...)
	f.c = fh
	return f, nil
}

// Capture renders fn into a string using layout.
func Capture(layout Layout, fn func(Writer) error) (string, error) {
	var buf bytes.Buffer
	f := New(&buf, WithLayout(layout))
	if err := fn(f); err != nil {
		return buf.String(), err
	}
	return buf.String(), f.Err()
}

// Layout returns the layout in effect.
func (f *File) Layout() Layout { return f.layout }

// Err returns the first write error, if any.
func (f *File) Err() error { return f.err }

// Close releases the sink once. Later calls only report the write error.
func (f *File) Close() error {
	if f.closed {
		return f.err
	}
	f.closed = true
	var cerr error
	if f.c != nil {
		cerr = f.c.Close()
	}
	if f.err != nil {
		return f.err
	}
	return cerr
}

func (f *File) emit(s string) {
	if f.err != nil || s == "" {
		return
	}
	if f.closed {
		f.err = os.ErrClosed
		return
	}
	if _, err := io.WriteString(f.w, s); err != nil {
		f.err = err
	}
}

func (f *File) root() view { return view{f: f} }

func (f *File) Depth() int                                  { return 0 }
func (f *File) Write(text string, indent int, endline bool) { f.root().Write(text, indent, endline) }
func (f *File) Line(text string)                            { f.root().Line(text) }
func (f *File) Label(text string)                           { f.root().Label(text) }
func (f *File) Newline(n int)                               { f.root().Newline(n) }
func (f *File) Indent(body func(Writer) error) error        { return f.root().Indent(body) }
func (f *File) Block(header, postfix string, body func(Writer) error) error {
	return f.root().Block(header, postfix, body)
}
