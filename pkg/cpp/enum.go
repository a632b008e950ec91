package cpp

import (
	"strconv"

	"github.com/cmmoran/cppgen/pkg/source"
)

// DefaultEnumPrefix is prepended to every item unless EnumConfig.Unprefixed
// or EnumConfig.Prefix says otherwise.
const DefaultEnumPrefix = "e"

// EnumConfig configures an Enum.
type EnumConfig struct {
	Name          string
	Items         []string
	Prefix        string
	Unprefixed    bool
	Class         bool
	NoCounter     bool
	Documentation string
}

// EnumValue is one rendered enumerator.
type EnumValue struct {
	Name  string
	Value int
}

// Enum is a plain or scoped enumeration whose items are numbered from 0. A
// trailing "<prefix><Name>Count" item holds the item count unless disabled.
type Enum struct {
	element
	cfg EnumConfig
}

func NewEnum(cfg EnumConfig) *Enum {
	cfg.Items = append([]string(nil), cfg.Items...)
	return &Enum{
		element: element{name: cfg.Name},
		cfg:     cfg,
	}
}

func (e *Enum) Config() EnumConfig { return e.cfg }

func (e *Enum) AddItems(items ...string) {
	e.cfg.Items = append(e.cfg.Items, items...)
}

// Prefix returns the effective item prefix.
func (e *Enum) Prefix() string {
	switch {
	case e.cfg.Unprefixed:
		return ""
	case e.cfg.Prefix != "":
		return e.cfg.Prefix
	}
	return DefaultEnumPrefix
}

// Values returns the enumerators in rendering order.
func (e *Enum) Values() []EnumValue {
	prefix := e.Prefix()
	out := make([]EnumValue, 0, len(e.cfg.Items)+1)
	for i, item := range e.cfg.Items {
		out = append(out, EnumValue{Name: prefix + item, Value: i})
	}
	if !e.cfg.NoCounter {
		out = append(out, EnumValue{Name: prefix + e.name + "Count", Value: len(e.cfg.Items)})
	}
	return out
}

func (e *Enum) TypeName(local bool) (string, error) {
	if e.name == "" {
		return "", configErrorf("enum", "anonymous enum cannot be used as a type")
	}
	return ScopedName(e, local), nil
}

func (e *Enum) Validate() error {
	if e.cfg.Name == "" {
		return configErrorf("enum", "missing name")
	}
	seen := make(map[string]struct{}, len(e.cfg.Items))
	for _, item := range e.cfg.Items {
		if item == "" {
			return configErrorf(e.name, "empty item")
		}
		if _, ok := seen[item]; ok {
			return configErrorf(e.name, "duplicate item %q", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}

func (e *Enum) Render(w source.Writer) error {
	if err := e.Validate(); err != nil {
		return err
	}
	writeDoc(w, e.cfg.Documentation)
	header := joinWords("enum", keyword(e.cfg.Class, "class"), e.name)
	return w.Block(header, ";", func(w source.Writer) error {
		values := e.Values()
		for i, v := range values {
			line := v.Name + " = " + strconv.Itoa(v.Value)
			if i < len(values)-1 {
				line += ","
			}
			w.Line(line)
		}
		return nil
	})
}
