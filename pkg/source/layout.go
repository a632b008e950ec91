package source

import (
	"fmt"
	"strings"
)

// BraceStyle selects where the opening brace of a block is placed.
type BraceStyle int

const (
	// BraceAllman puts the opening brace on its own line below the header.
	BraceAllman BraceStyle = iota
	// BraceAttached appends the opening brace to the header line.
	BraceAttached
)

func (b BraceStyle) String() string {
	switch b {
	case BraceAllman:
		return "allman"
	case BraceAttached:
		return "attached"
	default:
		return fmt.Sprintf("BraceStyle(%d)", int(b))
	}
}

// ParseBraceStyle maps a configuration value onto a BraceStyle. The empty
// string selects BraceAllman.
func ParseBraceStyle(s string) (BraceStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allman", "ansi":
		return BraceAllman, nil
	case "attached", "kr", "k&r":
		return BraceAttached, nil
	}
	return BraceAllman, fmt.Errorf("unknown brace style %q", s)
}

// Layout describes indentation and line termination of emitted text.
//
// Indent  – sequence written once per indentation level.
// Endline – line terminator.
// Braces  – placement of opening braces.
type Layout struct {
	Indent  string
	Endline string
	Braces  BraceStyle
}

// DefaultLayout is four spaces, "\n" and Allman braces.
func DefaultLayout() Layout {
	return Layout{
		Indent:  "    ",
		Endline: "\n",
		Braces:  BraceAllman,
	}
}

func (l Layout) normalize() Layout {
	if l.Endline == "" {
		l.Endline = "\n"
	}
	return l
}
