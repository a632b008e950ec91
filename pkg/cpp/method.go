package cpp

import (
	"strings"

	"github.com/cmmoran/cppgen/pkg/source"
)

// MethodConfig configures a Method. A nil Returns omits the return type, as
// for constructors and destructors.
type MethodConfig struct {
	Name          string
	Returns       TypeExpr
	Arguments     []string
	Static        bool
	Virtual       bool
	PureVirtual   bool
	Const         bool
	Override      bool
	Final         bool
	Constexpr     bool
	Inline        bool
	Documentation string
	Body          BodyFunc
}

// Method is a member function. It must be added to a Class or Scope before
// it can be rendered.
type Method struct {
	element
	cfg MethodConfig
}

func NewMethod(cfg MethodConfig) *Method {
	cfg.Arguments = append([]string(nil), cfg.Arguments...)
	return &Method{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
}

func (m *Method) Config() MethodConfig { return m.cfg }

func (m *Method) AddArgument(arg string) {
	m.cfg.Arguments = append(m.cfg.Arguments, arg)
}

// IsPureVirtual reports whether the method is declared "= 0".
func (m *Method) IsPureVirtual() bool { return m.cfg.PureVirtual }

// DefinedInline reports whether the method body is emitted with its
// declaration rather than in the definition pass.
func (m *Method) DefinedInline() bool { return m.cfg.Constexpr || m.cfg.Inline }

// Validate checks modifier compatibility.
func (m *Method) Validate() error {
	c := m.cfg
	switch {
	case c.Name == "":
		return configErrorf("method", "missing name")
	case c.Inline && (c.Virtual || c.PureVirtual):
		return configErrorf(c.Name, "inline method cannot be virtual")
	case c.Constexpr && (c.Virtual || c.PureVirtual):
		return configErrorf(c.Name, "constexpr method cannot be virtual")
	case c.Const && c.Static:
		return configErrorf(c.Name, "static method cannot be const")
	case c.Const && c.Virtual:
		return configErrorf(c.Name, "virtual method cannot be const")
	case c.Const && c.PureVirtual:
		return configErrorf(c.Name, "pure virtual method cannot be const")
	case c.Override && !c.Virtual:
		return configErrorf(c.Name, "override method must be virtual")
	case c.Final && !c.Virtual:
		return configErrorf(c.Name, "final method must be virtual")
	case c.Static && c.Virtual:
		return configErrorf(c.Name, "static method cannot be virtual")
	case c.PureVirtual && !c.Virtual:
		return configErrorf(c.Name, "pure virtual method must be virtual")
	case c.PureVirtual && c.Body != nil:
		return configErrorf(c.Name, "pure virtual method cannot have a body")
	case c.Constexpr && c.Body == nil:
		return configErrorf(c.Name, "constexpr method must have a body")
	case m.parent == nil:
		return configErrorf(c.Name, "method must belong to a class")
	}
	return nil
}

// Render writes the method as defined inside its class body. A pure virtual
// method renders as its declaration; any other method needs a body.
func (m *Method) Render(w source.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.cfg.PureVirtual {
		return m.RenderDeclaration(w)
	}
	if m.cfg.Body == nil {
		return usageErrorf(m.name, "no body to render")
	}
	sig, err := m.declarationSignature()
	if err != nil {
		return err
	}
	writeDoc(w, m.cfg.Documentation)
	return w.Block(sig, "", m.body)
}

// RenderDeclaration writes the in-class signature terminated by ";".
// Constexpr and inline methods are written with their body.
func (m *Method) RenderDeclaration(w source.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.DefinedInline() {
		return m.Render(w)
	}
	sig, err := m.declarationSignature()
	if err != nil {
		return err
	}
	if m.cfg.PureVirtual {
		sig += " = 0"
	}
	writeDoc(w, m.cfg.Documentation)
	w.Line(sig + ";")
	return nil
}

// RenderDefinition writes the out-of-class definition with a qualified name.
func (m *Method) RenderDefinition(w source.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c := m.cfg
	switch {
	case c.PureVirtual:
		return usageErrorf(m.name, "pure virtual method cannot be defined")
	case c.Body == nil:
		return usageErrorf(m.name, "no body to define")
	case m.DefinedInline():
		return usageErrorf(m.name, "constexpr and inline methods are defined by their declaration")
	}
	ret, err := m.returns(false)
	if err != nil {
		return err
	}
	sig := joinWords(ret, FullyQualifiedName(m)+m.arguments(), keyword(c.Const, "const"))
	writeDoc(w, c.Documentation)
	return w.Block(sig, "", m.body)
}

func (m *Method) declarationSignature() (string, error) {
	c := m.cfg
	ret, err := m.returns(true)
	if err != nil {
		return "", err
	}
	return joinWords(
		keyword(c.Static, "static"),
		keyword(c.Constexpr, "constexpr"),
		keyword(c.Virtual, "virtual"),
		keyword(c.Inline, "inline"),
		ret,
		m.name+m.arguments(),
		keyword(c.Const, "const"),
		keyword(c.Override, "override"),
		keyword(c.Final, "final"),
	), nil
}

func (m *Method) returns(local bool) (string, error) {
	if m.cfg.Returns == nil {
		return "", nil
	}
	return m.cfg.Returns.TypeName(local)
}

func (m *Method) arguments() string {
	return "(" + strings.Join(m.cfg.Arguments, ", ") + ")"
}

func (m *Method) body(w source.Writer) error {
	if m.cfg.Body == nil {
		return nil
	}
	return m.cfg.Body(w)
}
