package cpp

import (
	"github.com/cmmoran/cppgen/pkg/source"
)

// members is the ordered member aggregate shared by Class and Scope.
type members struct {
	owner     Node
	enums     []*Enum
	classes   []*Class
	methods   []*Method
	variables []*Variable
	arrays    []*Array
	scopes    []*Scope
}

func (m *members) AddEnum(e *Enum) error {
	if err := attach(m.owner, e); err != nil {
		return err
	}
	m.enums = append(m.enums, e)
	return nil
}

// AddClass adds a nested class.
func (m *members) AddClass(c *Class) error {
	if err := attach(m.owner, c); err != nil {
		return err
	}
	m.classes = append(m.classes, c)
	return nil
}

func (m *members) AddMethod(fn *Method) error {
	if err := attach(m.owner, fn); err != nil {
		return err
	}
	m.methods = append(m.methods, fn)
	return nil
}

func (m *members) AddVariable(v *Variable) error {
	if err := attach(m.owner, v); err != nil {
		return err
	}
	v.member = true
	m.variables = append(m.variables, v)
	return nil
}

func (m *members) AddArray(a *Array) error {
	if err := attach(m.owner, a); err != nil {
		return err
	}
	a.member = true
	m.arrays = append(m.arrays, a)
	return nil
}

// AddScope adds a nested scope such as an access section.
func (m *members) AddScope(s *Scope) error {
	if err := attach(m.owner, s); err != nil {
		return err
	}
	m.scopes = append(m.scopes, s)
	return nil
}

func (m *members) Enums() []*Enum         { return m.enums }
func (m *members) Classes() []*Class      { return m.classes }
func (m *members) Methods() []*Method     { return m.methods }
func (m *members) Variables() []*Variable { return m.variables }
func (m *members) Arrays() []*Array       { return m.arrays }
func (m *members) Scopes() []*Scope       { return m.scopes }

// Empty reports whether no member was added. Nested scopes count only when
// they are not empty themselves.
func (m *members) Empty() bool {
	if len(m.enums) > 0 ||
		len(m.classes) > 0 ||
		len(m.methods) > 0 ||
		len(m.variables) > 0 ||
		len(m.arrays) > 0 {
		return false
	}
	for _, s := range m.scopes {
		if !s.Empty() {
			return false
		}
	}
	return true
}

// declare writes enums, nested classes, methods, variables, arrays and nested
// scopes, in that order.
func (m *members) declare(w source.Writer) error {
	for _, e := range m.enums {
		if err := e.Render(w); err != nil {
			return err
		}
	}
	for _, c := range m.classes {
		if err := c.RenderDeclaration(w); err != nil {
			return err
		}
	}
	for _, fn := range m.methods {
		if err := fn.RenderDeclaration(w); err != nil {
			return err
		}
	}
	for _, v := range m.variables {
		if err := v.RenderDeclaration(w); err != nil {
			return err
		}
	}
	for _, a := range m.arrays {
		if err := a.RenderDeclaration(w); err != nil {
			return err
		}
	}
	for _, s := range m.scopes {
		if err := s.RenderDeclaration(w); err != nil {
			return err
		}
	}
	return nil
}

// define writes static variable definitions, static array definitions and
// out-of-line method bodies, each group or method followed by a blank line,
// then recurses into nested classes and scopes.
func (m *members) define(w source.Writer) error {
	wrote := false
	for _, v := range m.variables {
		if !v.IsStatic() || v.IsConstexpr() {
			continue
		}
		if err := v.RenderDefinition(w); err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		w.Newline(1)
	}

	wrote = false
	for _, a := range m.arrays {
		if !a.IsStatic() {
			continue
		}
		if err := a.RenderDefinition(w); err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		w.Newline(1)
	}

	for _, fn := range m.methods {
		if fn.IsPureVirtual() || fn.DefinedInline() || fn.cfg.Body == nil {
			continue
		}
		if err := fn.RenderDefinition(w); err != nil {
			return err
		}
		w.Newline(1)
	}

	for _, c := range m.classes {
		if err := c.RenderDefinition(w); err != nil {
			return err
		}
	}
	for _, s := range m.scopes {
		if err := s.RenderDefinition(w); err != nil {
			return err
		}
	}
	return nil
}
