// Package meta resolves board-specific pin aliases ("meta" references)
// declared in a C header as "#define NAME VALUE" lines.
package meta

import (
	"fmt"
	"maps"
	"strings"
)

// DefineToken introduces an alias line. The leading '#' is optional.
const DefineToken = "#define"

// LineSource retrieves the raw lines of a board meta header by name.
type LineSource interface {
	BoardMeta(header string) ([]string, error)
}

// LineSourceFunc adapts a function to LineSource.
type LineSourceFunc func(header string) ([]string, error)

// BoardMeta implements LineSource.
func (f LineSourceFunc) BoardMeta(header string) ([]string, error) { return f(header) }

// Mapping is an immutable alias -> identifier table for one board.
type Mapping struct {
	header  string
	entries map[string]string
}

// Empty is the mapping used by files without a meta header.
var Empty = Mapping{}

// NewMapping builds a mapping from explicit entries.
func NewMapping(header string, entries map[string]string) Mapping {
	return Mapping{header: header, entries: maps.Clone(entries)}
}

// BuildMapping returns Empty when header is "" and otherwise parses the
// lines src provides for it.
func BuildMapping(header string, src LineSource) (Mapping, error) {
	if header == "" {
		return Empty, nil
	}

	lines, err := src.BoardMeta(header)
	if err != nil {
		return Mapping{}, fmt.Errorf("reading meta header %s: %w", header, err)
	}

	return NewMapping(header, ParseLines(lines)), nil
}

// ParseLines extracts NAME -> VALUE pairs from define lines. Tabs count as
// spaces, lines without a value are skipped, and later lines win.
func ParseLines(lines []string) map[string]string {
	res := make(map[string]string)

	for _, line := range lines {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))

		rest, ok := cutToken(line)
		if !ok {
			continue
		}

		name, value, ok := strings.Cut(rest, " ")
		if !ok {
			continue
		}

		res[name] = strings.TrimSpace(value)
	}

	return res
}

// cutToken strips the define token and the whitespace after it.
func cutToken(line string) (string, bool) {
	line = strings.TrimPrefix(line, "#")
	token := DefineToken[1:]

	if !strings.HasPrefix(line, token) {
		return "", false
	}

	rest := line[len(token):]
	if rest == "" || rest[0] != ' ' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}

// Header returns the meta header name the mapping was built from.
func (m Mapping) Header() string { return m.header }

// IsEmpty reports whether no aliases are defined.
func (m Mapping) IsEmpty() bool { return len(m.entries) == 0 }

// Len returns the number of aliases.
func (m Mapping) Len() int { return len(m.entries) }

// Lookup returns the identifier an alias maps to.
func (m Mapping) Lookup(name string) (string, bool) {
	v, ok := m.entries[name]
	return v, ok
}

// Apply returns the mapped identifier, or id unchanged when it is not an alias.
func (m Mapping) Apply(id string) string {
	if v, ok := m.entries[id]; ok {
		return v
	}

	return id
}
