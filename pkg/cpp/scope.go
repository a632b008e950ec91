package cpp

import (
	"github.com/cmmoran/cppgen/pkg/source"
)

// Access labels accepted by ScopeConfig.Label.
const (
	Public    = "public"
	Protected = "protected"
	Private   = "private"
)

// ScopeConfig configures a Scope. An empty Name keeps the scope out of
// qualified names. A non-empty Label is written as "label:" before the
// members.
type ScopeConfig struct {
	Name          string
	Label         string
	Documentation string
}

// Scope is an ordered group of members rendered as one unit, typically an
// access section of a class.
type Scope struct {
	element
	members
	cfg ScopeConfig
}

func NewScope(cfg ScopeConfig) *Scope {
	s := &Scope{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
	s.members.owner = s
	return s
}

func (s *Scope) Config() ScopeConfig { return s.cfg }

func (s *Scope) Validate() error {
	switch s.cfg.Label {
	case "", Public, Protected, Private:
		return nil
	}
	return configErrorf(label(s), "unknown access label %q", s.cfg.Label)
}

// RenderDeclaration writes nothing for an empty scope.
func (s *Scope) RenderDeclaration(w source.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Empty() {
		return nil
	}
	if s.cfg.Label != "" {
		w.Label(s.cfg.Label)
	}
	writeDoc(w, s.cfg.Documentation)
	return s.declare(w)
}

func (s *Scope) RenderDefinition(w source.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.define(w)
}
