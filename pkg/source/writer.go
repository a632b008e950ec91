package source

// Writer is the line-oriented sink every element renders into.
type Writer interface {
	// Write emits text at the current depth shifted by indent levels. The
	// line terminator is appended only when endline is set.
	Write(text string, indent int, endline bool)
	// Line emits one terminated line at the current depth.
	Line(text string)
	// Label emits "text:" one level shallower than the current depth.
	Label(text string)
	// Newline emits n empty lines.
	Newline(n int)
	// Block emits header and an opening brace, runs body one level deeper
	// and always closes the brace followed by postfix, even when body fails.
	Block(header, postfix string, body func(Writer) error) error
	// Indent runs body one level deeper without braces.
	Indent(body func(Writer) error) error
	// Depth reports the current indentation level.
	Depth() int
}

// view is a Writer bound to a fixed depth of its File.
type view struct {
	f     *File
	depth int
}

func (v view) Depth() int { return v.depth }

func (v view) Write(text string, indent int, endline bool) {
	level := v.depth + indent
	if level < 0 {
		level = 0
	}
	if text != "" {
		for i := 0; i < level; i++ {
			v.f.emit(v.f.layout.Indent)
		}
		v.f.emit(text)
	}
	if endline {
		v.f.emit(v.f.layout.Endline)
	}
}

func (v view) Line(text string) { v.Write(text, 0, true) }

func (v view) Label(text string) { v.Write(text+":", -1, true) }

func (v view) Newline(n int) {
	for i := 0; i < n; i++ {
		v.f.emit(v.f.layout.Endline)
	}
}

func (v view) Block(header, postfix string, body func(Writer) error) error {
	switch {
	case header == "":
		v.Line("{")
	case v.f.layout.Braces == BraceAttached:
		v.Line(header + " {")
	default:
		v.Line(header)
		v.Line("{")
	}
	defer v.Line("}" + postfix)

	if body == nil {
		return nil
	}
	return body(view{f: v.f, depth: v.depth + 1})
}

func (v view) Indent(body func(Writer) error) error {
	if body == nil {
		return nil
	}
	return body(view{f: v.f, depth: v.depth + 1})
}
