package cpp

import (
	"github.com/cmmoran/cppgen/pkg/source"
)

// VariableConfig configures a Variable.
//
// Value         – initializer; "a = Value;" for free variables, "a(Value)" as
//                 a constructor-initializer fragment of a non-static member.
// Documentation – raw comment text written before the variable.
type VariableConfig struct {
	Name          string
	Type          TypeExpr
	Static        bool
	Extern        bool
	Const         bool
	Constexpr     bool
	Value         string
	Documentation string
}

// Variable is a free variable or, once added to a Class or Scope, a member
// variable.
type Variable struct {
	element
	cfg    VariableConfig
	member bool
}

func NewVariable(cfg VariableConfig) *Variable {
	return &Variable{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
}

func (v *Variable) Config() VariableConfig { return v.cfg }

// IsMember reports whether the variable was added to a Class or Scope.
func (v *Variable) IsMember() bool { return v.member }

// IsStatic reports whether the variable has static storage.
func (v *Variable) IsStatic() bool { return v.cfg.Static }

// IsConstexpr reports whether the variable is constexpr.
func (v *Variable) IsConstexpr() bool { return v.cfg.Constexpr }

// Validate checks the configuration without writing anything.
func (v *Variable) Validate() error {
	c := v.cfg
	switch {
	case c.Name == "":
		return configErrorf("variable", "missing name")
	case c.Type == nil:
		return configErrorf(c.Name, "missing type")
	case c.Const && c.Constexpr:
		return configErrorf(c.Name, "variable can be either const or constexpr, not both")
	case c.Static && c.Extern:
		return configErrorf(c.Name, "variable can be either static or extern, not both")
	case c.Constexpr && c.Value == "":
		return configErrorf(c.Name, "constexpr variable must be initialized")
	case c.Extern && v.member:
		return configErrorf(c.Name, "class member cannot be extern")
	}
	if msg := qualifierConflict(c.Type, c.Static, c.Extern, c.Const, c.Constexpr); msg != "" {
		return configErrorf(c.Name, "%s", msg)
	}
	return nil
}

// Assignment returns "name = value" without terminator.
func (v *Variable) Assignment(value string) string {
	return v.name + " = " + value
}

// Render writes a complete definition. Only free variables and static const
// or constexpr members can be rendered this way.
func (v *Variable) Render(w source.Writer) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c := v.cfg
	if v.member && !(c.Static && c.Const || c.Constexpr) {
		return usageErrorf(v.name, "member variable must be rendered through its declaration and definition")
	}
	typ, err := typeName(c.Type, true)
	if err != nil {
		return err
	}
	writeDoc(w, c.Documentation)
	if c.Extern {
		w.Line("extern " + typ + " " + v.name + ";")
		return nil
	}
	w.Line(joinWords(
		keyword(c.Static, "static"),
		keyword(c.Const, "const"),
		keyword(c.Constexpr, "constexpr"),
		typ,
		v.initialized(),
	) + ";")
	return nil
}

// RenderDeclaration writes the in-class declaration of a member variable.
// A constexpr declaration carries its initializer.
func (v *Variable) RenderDeclaration(w source.Writer) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if !v.member {
		return usageErrorf(v.name, "free variable has no separate declaration, use Render")
	}
	c := v.cfg
	typ, err := typeName(c.Type, true)
	if err != nil {
		return err
	}
	name := v.name
	if c.Constexpr {
		name = v.Assignment(c.Value)
	}
	writeDoc(w, c.Documentation)
	w.Line(joinWords(
		keyword(c.Static, "static"),
		keyword(c.Const, "const"),
		keyword(c.Constexpr, "constexpr"),
		typ,
		name,
	) + ";")
	return nil
}

// RenderDefinition writes the out-of-class definition of a static member
// ("const T Owner::name = value;") or the constructor-initializer fragment of
// an instance member ("name(value)").
func (v *Variable) RenderDefinition(w source.Writer) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if !v.member {
		return usageErrorf(v.name, "free variable has no separate definition, use Render")
	}
	c := v.cfg
	if c.Constexpr {
		return usageErrorf(v.name, "constexpr member is defined by its declaration")
	}
	if !c.Static {
		w.Line(v.name + "(" + c.Value + ")")
		return nil
	}
	typ, err := typeName(c.Type, false)
	if err != nil {
		return err
	}
	decl := joinWords(keyword(c.Const, "const"), typ, FullyQualifiedName(v))
	if c.Value != "" {
		decl += " = " + c.Value
	}
	w.Line(decl + ";")
	return nil
}

func (v *Variable) initialized() string {
	if v.cfg.Value == "" {
		return v.name
	}
	return v.Assignment(v.cfg.Value)
}
