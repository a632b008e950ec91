package source

import (
	"strings"

	"github.com/lithammer/dedent"
)

// Dedent removes the whitespace prefix shared by all non-blank lines of text
// and drops leading and trailing blank lines.
func Dedent(text string) []string {
	lines := strings.Split(dedent.Dedent(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Doc writes a dedented documentation block, one line per text line.
func Doc(w Writer, text string) {
	for _, l := range Dedent(text) {
		w.Line(l)
	}
}
