package cpp

import (
	"strings"
)

// Node is any construct of the generated tree. The parent of a node is set
// once, when an owner accepts it through one of its Add methods.
type Node interface {
	Name() string
	Parent() Node
	base() *element
}

type element struct {
	name   string
	parent Node
}

func (e *element) Name() string   { return e.name }
func (e *element) Parent() Node   { return e.parent }
func (e *element) base() *element { return e }

// attach makes owner the parent of child. A child that already has a parent,
// or that is owner itself or one of its ancestors, is rejected.
func attach(owner, child Node) error {
	cb := child.base()
	if cb.parent != nil {
		return usageErrorf(label(child), "already owned by %q", label(cb.parent))
	}
	for n := owner; n != nil; n = n.Parent() {
		if n == child {
			return usageErrorf(label(child), "cannot be attached below itself")
		}
	}
	cb.parent = owner
	return nil
}

func label(n Node) string {
	if name := FullyQualifiedName(n); name != "" {
		return name
	}
	return "<anonymous>"
}

// ParentQualifier returns the "::"-terminated chain of named ancestors of n,
// or "" when n has no named ancestor. Anonymous ancestors are skipped.
func ParentQualifier(n Node) string {
	var parts []string
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Name() != "" {
			parts = append(parts, p.Name())
		}
	}
	if len(parts) == 0 {
		return ""
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::") + "::"
}

// FullyQualifiedName returns the name of n prefixed by its ParentQualifier.
func FullyQualifiedName(n Node) string {
	return ParentQualifier(n) + n.Name()
}

// ScopedName returns the bare name inside the owning scope and the fully
// qualified name elsewhere.
func ScopedName(n Node, local bool) string {
	if local {
		return n.Name()
	}
	return FullyQualifiedName(n)
}
