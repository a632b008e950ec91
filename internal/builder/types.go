package builder

import (
	"strings"

	"github.com/cmmoran/cppgen/pkg/cpp"
)

// typeScope maps type names visible at one nesting level onto the elements
// that declare them. Unknown names resolve to raw types.
type typeScope struct {
	parent *typeScope
	names  map[string]cpp.TypeExpr
}

func newTypeScope(parent *typeScope) *typeScope {
	return &typeScope{parent: parent, names: map[string]cpp.TypeExpr{}}
}

func (s *typeScope) define(name string, t cpp.TypeExpr) {
	s.names[name] = t
}

func (s *typeScope) lookup(name string) (cpp.TypeExpr, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.names[name]; ok {
			return t, true
		}
	}
	return nil, false
}

func (s *typeScope) resolve(name string) cpp.TypeExpr {
	name = strings.TrimSpace(name)
	if t, ok := s.lookup(name); ok {
		return t
	}
	return cpp.Raw(name)
}

// resolveOptional resolves name, or returns nil for the empty string.
func (s *typeScope) resolveOptional(name string) cpp.TypeExpr {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return s.resolve(name)
}

func (s *typeScope) resolveTemplate(name string, args []string) cpp.TypeExpr {
	base := s.resolve(name)
	if len(args) == 0 {
		return base
	}
	targs := make([]cpp.TypeExpr, 0, len(args))
	for _, a := range args {
		targs = append(targs, s.resolve(a))
	}
	return cpp.Template(base, targs...)
}
