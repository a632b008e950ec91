package goenum

import (
	"bytes"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"github.com/cmmoran/cppgen/pkg/cpp"
)

// TypeName returns the Go type mirroring e: "Counter::Mode" → "CounterMode".
func TypeName(e *cpp.Enum) string {
	return strcase.ToCamel(strings.ReplaceAll(cpp.FullyQualifiedName(e), "::", "_"))
}

// File builds a Go source file declaring one int type per enum and a const
// block with the same enumerator values.
func File(pkg string, enums []*cpp.Enum) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by cppgen. DO NOT EDIT.")
	for _, e := range enums {
		typ := TypeName(e)
		f.Commentf("%s mirrors the C++ enum %s.", typ, cpp.FullyQualifiedName(e))
		f.Type().Id(typ).Int()

		prefix := e.Prefix()
		defs := make([]jen.Code, 0, len(e.Values()))
		for _, v := range e.Values() {
			name := typ + strcase.ToCamel(strings.TrimPrefix(v.Name, prefix))
			defs = append(defs, jen.Id(name).Id(typ).Op("=").Lit(v.Value))
		}
		f.Const().Defs(defs...)
	}
	return f
}

// Render returns the formatted Go source of File(pkg, enums).
func Render(pkg string, enums []*cpp.Enum) ([]byte, error) {
	if pkg == "" {
		return nil, errors.New("go package name is required")
	}
	var buf bytes.Buffer
	if err := File(pkg, enums).Render(&buf); err != nil {
		return nil, errors.Wrap(err, "render go enums")
	}
	return buf.Bytes(), nil
}
