package builder

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/cmmoran/cppgen/pkg/cpp"
)

var memberPrefixes = []string{"m_", "s_", "k_", "g_"}

// memberStem strips the conventional member prefix and surrounding
// underscores: "m_max_size" → "max_size".
func memberStem(name string) string {
	for _, p := range memberPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			name = name[len(p):]
			break
		}
	}
	return strings.Trim(name, "_")
}

// GetterName returns the accessor name of a member variable.
func GetterName(member string) string {
	return "Get" + strcase.ToCamel(memberStem(member))
}

// ElementAccessorName returns the indexed accessor name of a member array,
// named after a single element: "m_limits" → "GetLimit".
func ElementAccessorName(member string) string {
	return "Get" + strcase.ToCamel(inflection.Singular(memberStem(member)))
}

// accessorType returns class and template types by const reference and
// everything else by value.
func accessorType(t cpp.TypeExpr) cpp.TypeExpr {
	switch t.(type) {
	case *cpp.Class, *cpp.Type:
		return &cpp.Type{Base: t, Const: true, Ref: true}
	}
	return t
}

func getter(v *cpp.Variable) *cpp.Method {
	c := v.Config()
	return cpp.NewMethod(cpp.MethodConfig{
		Name:      GetterName(v.Name()),
		Returns:   accessorType(c.Type),
		Static:    c.Static,
		Const:     !c.Static,
		Constexpr: c.Static && c.Constexpr,
		Body:      cpp.Lines("return " + v.Name() + ";"),
	})
}

func elementAccessor(a *cpp.Array) *cpp.Method {
	c := a.Config()
	return cpp.NewMethod(cpp.MethodConfig{
		Name:      ElementAccessorName(a.Name()),
		Returns:   accessorType(c.Type),
		Arguments: []string{"size_t index"},
		Static:    c.Static,
		Const:     !c.Static,
		Body:      cpp.Lines("return " + a.Name() + "[index];"),
	})
}

// addAccessor adds m to class unless a method of that name already exists in
// the class or any of its scopes.
func (b *Builder) addAccessor(class *cpp.Class, m *cpp.Method) error {
	if hasMethod(class.Methods(), class.Scopes(), m.Name()) {
		b.log.With("class", cpp.FullyQualifiedName(class), "method", m.Name()).Debug("accessor already declared, skipping")
		return nil
	}
	return class.AddMethod(m)
}

func hasMethod(methods []*cpp.Method, scopes []*cpp.Scope, name string) bool {
	for _, existing := range methods {
		if existing.Name() == name {
			return true
		}
	}
	for _, s := range scopes {
		if hasMethod(s.Methods(), s.Scopes(), name) {
			return true
		}
	}
	return false
}
