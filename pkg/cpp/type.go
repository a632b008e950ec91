package cpp

import (
	"strings"
)

// TypeExpr is anything that can be spelled as a C++ type. local selects the
// spelling used inside the scope that owns the type.
type TypeExpr interface {
	TypeName(local bool) (string, error)
}

// Raw is a type spelled verbatim, e.g. Raw("size_t") or Raw("char*").
type Raw string

func (r Raw) TypeName(bool) (string, error) {
	if strings.TrimSpace(string(r)) == "" {
		return "", configErrorf("type", "empty type name")
	}
	return string(r), nil
}

// Type decorates a base type with storage and cv qualifiers, a reference
// marker and optional template arguments.
type Type struct {
	Base      TypeExpr
	Static    bool
	Extern    bool
	Const     bool
	Constexpr bool
	Ref       bool
	Args      []TypeExpr
}

// Template returns base instantiated with args.
func Template(base TypeExpr, args ...TypeExpr) *Type {
	return &Type{Base: base, Args: args}
}

// Validate checks qualifier combinations.
func (t *Type) Validate() error {
	switch {
	case t.Base == nil:
		return configErrorf("type", "missing base type")
	case t.Const && t.Constexpr:
		return configErrorf("type", "can be either const or constexpr, not both")
	case t.Static && t.Extern:
		return configErrorf("type", "can be either static or extern, not both")
	}
	return nil
}

func (t *Type) TypeName(local bool) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	name, err := t.Base.TypeName(local)
	if err != nil {
		return "", err
	}
	if len(t.Args) > 0 {
		args := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			if a == nil {
				return "", configErrorf(name, "nil template argument")
			}
			s, err := a.TypeName(local)
			if err != nil {
				return "", err
			}
			args = append(args, s)
		}
		name += "<" + strings.Join(args, ", ") + ">"
	}
	if t.Ref {
		name += "&"
	}
	return joinWords(
		keyword(t.Static, "static"),
		keyword(t.Extern, "extern"),
		keyword(t.Const, "const"),
		keyword(t.Constexpr, "constexpr"),
		name,
	), nil
}

// qualifierConflict describes a qualifier repeated on t and on the variable
// or array declared with it, or a combination of both that cannot be spelled.
// It returns "" when the qualifiers can be joined.
func qualifierConflict(t TypeExpr, static, extern, cnst, constexpr bool) string {
	tt, ok := t.(*Type)
	if !ok {
		return ""
	}
	switch {
	case tt.Static && static:
		return "static on both the declaration and its type"
	case tt.Extern && extern:
		return "extern on both the declaration and its type"
	case tt.Const && cnst:
		return "const on both the declaration and its type"
	case tt.Constexpr && constexpr:
		return "constexpr on both the declaration and its type"
	case (tt.Static || static) && (tt.Extern || extern):
		return "declaration and type combine static and extern"
	case (tt.Const || cnst) && (tt.Constexpr || constexpr):
		return "declaration and type combine const and constexpr"
	}
	return ""
}

func typeName(t TypeExpr, local bool) (string, error) {
	if t == nil {
		return "", configErrorf("type", "missing type")
	}
	return t.TypeName(local)
}

func keyword(on bool, kw string) string {
	if on {
		return kw
	}
	return ""
}

// joinWords joins the non-empty words with single spaces.
func joinWords(words ...string) string {
	out := words[:0:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
