package cpp

import (
	"strconv"
	"strings"

	"github.com/cmmoran/cppgen/pkg/source"
)

// ArrayConfig configures an Array. Size 0 leaves the extent to the
// initializer. NewlineAlign writes one item per line. An Extern array renders
// as a declaration without initializer.
type ArrayConfig struct {
	Name          string
	Type          TypeExpr
	Static        bool
	Extern        bool
	Const         bool
	Size          int
	NewlineAlign  bool
	Items         []string
	Documentation string
}

// Array is a C-style array, free or class member.
type Array struct {
	element
	cfg    ArrayConfig
	member bool
}

func NewArray(cfg ArrayConfig) *Array {
	cfg.Items = append([]string(nil), cfg.Items...)
	return &Array{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
}

func (a *Array) Config() ArrayConfig { return a.cfg }

func (a *Array) IsMember() bool { return a.member }

func (a *Array) IsStatic() bool { return a.cfg.Static }

// Items returns the initializer items in insertion order.
func (a *Array) Items() []string { return a.cfg.Items }

// AddItems appends initializer items.
func (a *Array) AddItems(items ...string) {
	a.cfg.Items = append(a.cfg.Items, items...)
}

func (a *Array) Validate() error {
	switch {
	case a.cfg.Name == "":
		return configErrorf("array", "missing name")
	case a.cfg.Type == nil:
		return configErrorf(a.cfg.Name, "missing type")
	case a.cfg.Size < 0:
		return configErrorf(a.cfg.Name, "negative size %d", a.cfg.Size)
	case a.cfg.Static && a.cfg.Extern:
		return configErrorf(a.cfg.Name, "array can be either static or extern, not both")
	case a.cfg.Extern && a.member:
		return configErrorf(a.cfg.Name, "class member cannot be extern")
	}
	if msg := qualifierConflict(a.cfg.Type, a.cfg.Static, a.cfg.Extern, a.cfg.Const, false); msg != "" {
		return configErrorf(a.cfg.Name, "%s", msg)
	}
	return nil
}

// Render writes a complete array definition, e.g. "int a[5] = {1, 2, 0};".
// Members must be static const to be rendered this way.
func (a *Array) Render(w source.Writer) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.member && !(a.cfg.Static && a.cfg.Const) {
		return usageErrorf(a.name, "member array must be rendered through its declaration and definition")
	}
	decl, err := a.declarator(true, true)
	if err != nil {
		return err
	}
	writeDoc(w, a.cfg.Documentation)
	if a.cfg.Extern {
		w.Line("extern " + decl + ";")
		return nil
	}
	return a.writeInitialized(w, decl)
}

// RenderDeclaration writes the in-class declaration of a member array.
func (a *Array) RenderDeclaration(w source.Writer) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.member {
		return usageErrorf(a.name, "free array has no separate declaration, use Render")
	}
	decl, err := a.declarator(true, true)
	if err != nil {
		return err
	}
	writeDoc(w, a.cfg.Documentation)
	w.Line(decl + ";")
	return nil
}

// RenderDefinition writes the qualified definition of a static member array.
func (a *Array) RenderDefinition(w source.Writer) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.member {
		return usageErrorf(a.name, "free array has no separate definition, use Render")
	}
	if !a.cfg.Static {
		return usageErrorf(a.name, "only static member arrays can be defined out of class")
	}
	decl, err := a.declarator(false, false)
	if err != nil {
		return err
	}
	return a.writeInitialized(w, decl)
}

func (a *Array) declarator(local, static bool) (string, error) {
	typ, err := typeName(a.cfg.Type, local)
	if err != nil {
		return "", err
	}
	name := ScopedName(a, local)
	size := ""
	if a.cfg.Size > 0 {
		size = strconv.Itoa(a.cfg.Size)
	}
	return joinWords(
		keyword(static && a.cfg.Static, "static"),
		keyword(a.cfg.Const, "const"),
		typ,
		name+"["+size+"]",
	), nil
}

func (a *Array) writeInitialized(w source.Writer, decl string) error {
	items := a.cfg.Items
	if !a.cfg.NewlineAlign || len(items) == 0 {
		content := "nullptr"
		if len(items) > 0 {
			content = strings.Join(items, ", ")
		}
		w.Line(decl + " = {" + content + "};")
		return nil
	}
	w.Line(decl + " = {")
	err := w.Indent(func(w source.Writer) error {
		for i, item := range items {
			if i < len(items)-1 {
				item += ","
			}
			w.Line(item)
		}
		return nil
	})
	w.Line("};")
	return err
}
