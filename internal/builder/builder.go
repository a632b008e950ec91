package builder

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/cmmoran/cppgen/internal/model"
	"github.com/cmmoran/cppgen/pkg/cpp"
)

// Unit is the element tree built from one model file. Top-level elements are
// roots: they have no parent.
type Unit struct {
	Model     *model.File
	Enums     []*cpp.Enum
	Variables []*cpp.Variable
	Arrays    []*cpp.Array
	Functions []*cpp.Function
	Classes   []*cpp.Class
}

// AllEnums returns every enum of the unit, nested ones included, in
// declaration order.
func (u *Unit) AllEnums() []*cpp.Enum {
	out := append([]*cpp.Enum(nil), u.Enums...)
	var walk func(enums []*cpp.Enum, classes []*cpp.Class, scopes []*cpp.Scope)
	walk = func(enums []*cpp.Enum, classes []*cpp.Class, scopes []*cpp.Scope) {
		out = append(out, enums...)
		for _, c := range classes {
			walk(c.Enums(), c.Classes(), c.Scopes())
		}
		for _, s := range scopes {
			walk(s.Enums(), s.Classes(), s.Scopes())
		}
	}
	walk(nil, u.Classes, nil)
	return out
}

// Builder turns model files into element trees.
type Builder struct {
	excludes  []string
	accessors bool
	log       *slog.Logger
}

type Option func(*Builder)

// WithExcludeTypes skips classes and enums with these names (case-insensitive).
func WithExcludeTypes(names ...string) Option {
	return func(b *Builder) {
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				b.excludes = append(b.excludes, n)
			}
		}
	}
}

// WithoutAccessors disables getter and accessor generation.
func WithoutAccessors() Option { return func(b *Builder) { b.accessors = false } }

func WithLogger(l *slog.Logger) Option { return func(b *Builder) { b.log = l } }

func New(opts ...Option) *Builder {
	b := &Builder{
		accessors: true,
		log:       slog.Default(),
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

func (b *Builder) excluded(name string) bool {
	for _, ex := range b.excludes {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

// Build creates the element tree for f.
func (b *Builder) Build(f *model.File) (*Unit, error) {
	if f == nil {
		return nil, errors.New("nil model")
	}
	u := &Unit{Model: f}
	root := newTypeScope(nil)

	for _, me := range f.Enums {
		if b.excluded(me.Name) {
			b.log.With("enum", me.Name).Debug("excluded")
			continue
		}
		e := newEnum(me)
		root.define(me.Name, e)
		u.Enums = append(u.Enums, e)
	}

	// Every class and enum is created and registered before any member is
	// built so that type references resolve independent of declaration order.
	roots := make([]model.Class, 0, len(f.Classes))
	for _, mc := range f.Classes {
		if b.excluded(mc.Name) {
			b.log.With("class", mc.Name).Debug("excluded")
			continue
		}
		c := newClass(mc)
		root.define(mc.Name, c)
		u.Classes = append(u.Classes, c)
		roots = append(roots, mc)
	}
	var work []pending
	for i, mc := range roots {
		p, err := b.declare(u.Classes[i], u.Classes[i], mc.Members, newTypeScope(root))
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", mc.Name)
		}
		work = append(work, p...)
	}

	for _, mv := range f.Variables {
		u.Variables = append(u.Variables, newVariable(mv, root))
	}
	for _, ma := range f.Arrays {
		u.Arrays = append(u.Arrays, newArray(ma, root))
	}
	for _, mf := range f.Functions {
		u.Functions = append(u.Functions, cpp.NewFunction(cpp.FunctionConfig{
			Name:          mf.Name,
			Returns:       root.resolveOptional(mf.Returns),
			Arguments:     mf.Arguments,
			Static:        mf.Static,
			Inline:        mf.Inline,
			Constexpr:     mf.Constexpr,
			Documentation: mf.Doc,
			Body:          body(mf.Body),
		}))
	}

	// Accessors are added once every declared method exists, so a method
	// from any scope of the class suppresses the generated one.
	var accessors []accessor
	for _, p := range work {
		acc, err := b.fill(p)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", cpp.FullyQualifiedName(p.class))
		}
		accessors = append(accessors, acc...)
	}
	for _, a := range accessors {
		if err := b.addAccessor(a.class, a.method); err != nil {
			return nil, errors.Wrapf(err, "%s", cpp.FullyQualifiedName(a.class))
		}
	}
	return u, nil
}

// container is implemented by *cpp.Class and *cpp.Scope.
type container interface {
	AddEnum(*cpp.Enum) error
	AddClass(*cpp.Class) error
	AddMethod(*cpp.Method) error
	AddVariable(*cpp.Variable) error
	AddArray(*cpp.Array) error
	AddScope(*cpp.Scope) error
}

// pending is a member list whose methods, variables and arrays are yet to be
// built. class is the nearest enclosing class and receives accessors.
type pending struct {
	target  container
	class   *cpp.Class
	members model.Members
	types   *typeScope
}

// declare creates the enums, nested classes and scopes of m below target and
// returns the member lists left to fill, target's own first.
func (b *Builder) declare(target container, class *cpp.Class, m model.Members, ts *typeScope) ([]pending, error) {
	out := []pending{{target: target, class: class, members: m, types: ts}}
	for _, me := range m.Enums {
		if b.excluded(me.Name) {
			b.log.With("enum", me.Name).Debug("excluded")
			continue
		}
		e := newEnum(me)
		if err := target.AddEnum(e); err != nil {
			return nil, err
		}
		ts.define(me.Name, e)
	}
	var nested []model.Class
	var classes []*cpp.Class
	for _, mc := range m.Classes {
		if b.excluded(mc.Name) {
			b.log.With("class", mc.Name).Debug("excluded")
			continue
		}
		c := newClass(mc)
		if err := target.AddClass(c); err != nil {
			return nil, err
		}
		ts.define(mc.Name, c)
		nested = append(nested, mc)
		classes = append(classes, c)
	}
	for i, mc := range nested {
		sub, err := b.declare(classes[i], classes[i], mc.Members, newTypeScope(ts))
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", mc.Name)
		}
		out = append(out, sub...)
	}
	for _, ms := range m.Scopes {
		s := cpp.NewScope(cpp.ScopeConfig{Name: ms.Name, Label: ms.Label, Documentation: ms.Doc})
		if err := target.AddScope(s); err != nil {
			return nil, err
		}
		sts := ts
		if ms.Name != "" {
			sts = newTypeScope(ts)
		}
		sub, err := b.declare(s, class, ms.Members, sts)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// accessor is a generated method waiting to be added to class.
type accessor struct {
	class  *cpp.Class
	method *cpp.Method
}

func (b *Builder) fill(p pending) ([]accessor, error) {
	var acc []accessor
	for _, mm := range p.members.Methods {
		if err := p.target.AddMethod(newMethod(mm, p.types)); err != nil {
			return nil, err
		}
	}
	for _, mv := range p.members.Variables {
		v := newVariable(mv, p.types)
		if err := p.target.AddVariable(v); err != nil {
			return nil, err
		}
		if b.accessors && mv.Getter {
			acc = append(acc, accessor{class: p.class, method: getter(v)})
		}
	}
	for _, ma := range p.members.Arrays {
		a := newArray(ma, p.types)
		if err := p.target.AddArray(a); err != nil {
			return nil, err
		}
		if b.accessors && ma.Accessor {
			acc = append(acc, accessor{class: p.class, method: elementAccessor(a)})
		}
	}
	b.log.With("class", cpp.FullyQualifiedName(p.class)).Debug("built members",
		"methods", len(p.members.Methods),
		"variables", len(p.members.Variables),
		"arrays", len(p.members.Arrays),
	)
	return acc, nil
}

func body(lines []string) cpp.BodyFunc {
	if lines == nil {
		return nil
	}
	return cpp.Lines(lines...)
}

func newClass(mc model.Class) *cpp.Class {
	return cpp.NewClass(cpp.ClassConfig{
		Name:          mc.Name,
		Struct:        mc.Struct,
		ParentClass:   mc.Parent,
		Documentation: mc.Doc,
	})
}

func newEnum(me model.Enum) *cpp.Enum {
	return cpp.NewEnum(cpp.EnumConfig{
		Name:          me.Name,
		Items:         me.Items,
		Prefix:        me.Prefix,
		Unprefixed:    me.Unprefixed,
		Class:         me.Class,
		NoCounter:     me.NoCounter,
		Documentation: me.Doc,
	})
}

func newVariable(mv model.Variable, ts *typeScope) *cpp.Variable {
	return cpp.NewVariable(cpp.VariableConfig{
		Name:          mv.Name,
		Type:          ts.resolveTemplate(mv.Type, mv.TypeArgs),
		Static:        mv.Static,
		Extern:        mv.Extern,
		Const:         mv.Const,
		Constexpr:     mv.Constexpr,
		Value:         mv.Value,
		Documentation: mv.Doc,
	})
}

func newArray(ma model.Array, ts *typeScope) *cpp.Array {
	return cpp.NewArray(cpp.ArrayConfig{
		Name:          ma.Name,
		Type:          ts.resolve(ma.Type),
		Static:        ma.Static,
		Const:         ma.Const,
		Size:          ma.Size,
		NewlineAlign:  ma.NewlineAlign,
		Items:         ma.Items,
		Documentation: ma.Doc,
	})
}

func newMethod(mm model.Method, ts *typeScope) *cpp.Method {
	return cpp.NewMethod(cpp.MethodConfig{
		Name:          mm.Name,
		Returns:       ts.resolveOptional(mm.Returns),
		Arguments:     mm.Arguments,
		Static:        mm.Static,
		Virtual:       mm.Virtual,
		PureVirtual:   mm.PureVirtual,
		Const:         mm.Const,
		Override:      mm.Override,
		Final:         mm.Final,
		Constexpr:     mm.Constexpr,
		Inline:        mm.Inline,
		Documentation: mm.Doc,
		Body:          body(mm.Body),
	})
}
