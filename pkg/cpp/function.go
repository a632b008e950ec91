package cpp

import (
	"strings"

	"github.com/cmmoran/cppgen/pkg/source"
)

// FunctionConfig configures a free Function. A nil Returns renders "void".
type FunctionConfig struct {
	Name          string
	Returns       TypeExpr
	Arguments     []string
	Static        bool
	Inline        bool
	Constexpr     bool
	Documentation string
	Body          BodyFunc
}

// Function is a free (non-member) function.
type Function struct {
	element
	cfg FunctionConfig
}

func NewFunction(cfg FunctionConfig) *Function {
	cfg.Arguments = append([]string(nil), cfg.Arguments...)
	return &Function{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
}

func (f *Function) Config() FunctionConfig { return f.cfg }

// AddArgument appends a raw argument such as "int a" or "void* p = nullptr".
func (f *Function) AddArgument(arg string) {
	f.cfg.Arguments = append(f.cfg.Arguments, arg)
}

func (f *Function) Validate() error {
	c := f.cfg
	switch {
	case c.Name == "":
		return configErrorf("function", "missing name")
	case c.Constexpr && c.Body == nil:
		return configErrorf(c.Name, "constexpr function must have a body")
	case c.Inline && c.Body == nil:
		return configErrorf(c.Name, "inline function must have a body")
	}
	return nil
}

// Render writes the signature followed by the body block.
func (f *Function) Render(w source.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.cfg.Body == nil {
		return usageErrorf(f.name, "no body to render")
	}
	sig, err := f.signature()
	if err != nil {
		return err
	}
	writeDoc(w, f.cfg.Documentation)
	return w.Block(sig, "", f.body)
}

// RenderDeclaration writes the ";"-terminated signature. Constexpr and inline
// functions are declared together with their body.
func (f *Function) RenderDeclaration(w source.Writer) error {
	if f.cfg.Constexpr || f.cfg.Inline {
		return f.Render(w)
	}
	sig, err := f.signature()
	if err != nil {
		return err
	}
	writeDoc(w, f.cfg.Documentation)
	w.Line(sig + ";")
	return nil
}

// RenderDefinition writes the out-of-line definition.
func (f *Function) RenderDefinition(w source.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	switch {
	case f.cfg.Body == nil:
		return usageErrorf(f.name, "no body to define")
	case f.cfg.Constexpr || f.cfg.Inline:
		return usageErrorf(f.name, "constexpr and inline functions are defined by their declaration")
	}
	return f.Render(w)
}

func (f *Function) signature() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	ret := "void"
	if f.cfg.Returns != nil {
		var err error
		if ret, err = f.cfg.Returns.TypeName(false); err != nil {
			return "", err
		}
	}
	return joinWords(
		keyword(f.cfg.Static, "static"),
		keyword(f.cfg.Constexpr, "constexpr"),
		keyword(f.cfg.Inline, "inline"),
		ret,
		f.name+"("+strings.Join(f.cfg.Arguments, ", ")+")",
	), nil
}

func (f *Function) body(w source.Writer) error {
	if f.cfg.Body == nil {
		return nil
	}
	return f.cfg.Body(w)
}
