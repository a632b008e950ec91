package cpp

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cmmoran/cppgen/pkg/source"
)

// Pass selects which view of a DualRenderer is produced.
type Pass int

const (
	// Combined renders the declaration, a blank line and the definition.
	Combined Pass = iota
	// Declaration renders the interface-facing signatures only.
	Declaration
	// Definition renders the qualified, body-bearing implementation.
	Definition
)

func (p Pass) String() string {
	switch p {
	case Combined:
		return "combined"
	case Declaration:
		return "declaration"
	case Definition:
		return "definition"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// Renderer is implemented by elements with a single rendered form.
type Renderer interface {
	Render(w source.Writer) error
}

// DualRenderer is implemented by elements whose declaration and definition
// are emitted separately, typically to a header and a source file.
type DualRenderer interface {
	RenderDeclaration(w source.Writer) error
	RenderDefinition(w source.Writer) error
}

// BodyFunc writes the statements of a function body at the depth of w.
type BodyFunc func(w source.Writer) error

// Render dispatches r according to pass.
func Render(w source.Writer, r DualRenderer, pass Pass) error {
	switch pass {
	case Declaration:
		return r.RenderDeclaration(w)
	case Definition:
		return r.RenderDefinition(w)
	case Combined:
		if err := r.RenderDeclaration(w); err != nil {
			return err
		}
		w.Newline(1)
		return r.RenderDefinition(w)
	}
	return errors.Wrapf(ErrUsage, "unknown render pass %d", int(pass))
}

// Lines returns a BodyFunc writing each statement on its own line.
func Lines(statements ...string) BodyFunc {
	return func(w source.Writer) error {
		for _, s := range statements {
			w.Line(s)
		}
		return nil
	}
}

func writeDoc(w source.Writer, doc string) {
	if doc != "" {
		source.Doc(w, doc)
	}
}
