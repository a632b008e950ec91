package cpp

import (
	"github.com/cmmoran/cppgen/pkg/source"
)

// ClassConfig configures a Class. ParentClass, when set, is inherited
// publicly.
type ClassConfig struct {
	Name          string
	Struct        bool
	ParentClass   string
	Documentation string
}

// Class is a class or struct. Its members are declared in the declaration
// pass; static members and method bodies are emitted, fully qualified, in the
// definition pass together with those of nested classes.
type Class struct {
	element
	members
	cfg ClassConfig
}

func NewClass(cfg ClassConfig) *Class {
	c := &Class{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
	c.members.owner = c
	return c
}

func (c *Class) Config() ClassConfig { return c.cfg }

func (c *Class) TypeName(local bool) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return ScopedName(c, local), nil
}

func (c *Class) Validate() error {
	if c.cfg.Name == "" {
		return configErrorf("class", "missing name")
	}
	return nil
}

func (c *Class) kind() string {
	if c.cfg.Struct {
		return "struct"
	}
	return "class"
}

// RenderDeclaration writes the class body. Members of a class (not a struct)
// are placed in a leading public section.
func (c *Class) RenderDeclaration(w source.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	writeDoc(w, c.cfg.Documentation)
	header := c.kind() + " " + c.name
	if c.cfg.ParentClass != "" {
		header += " : public " + c.cfg.ParentClass
	}
	return w.Block(header, ";", func(w source.Writer) error {
		if !c.cfg.Struct {
			w.Label(Public)
		}
		return c.declare(w)
	})
}

func (c *Class) RenderDefinition(w source.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.define(w)
}

// Render writes the declaration, a blank line and the definition.
func (c *Class) Render(w source.Writer) error {
	return Render(w, c, Combined)
}
