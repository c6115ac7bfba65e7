package plan

import (
	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/enums"
	"pinout-generator/internal/pintype"
	"pinout-generator/internal/registry"
)

// ResolvedPinout is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedPinout struct {
	// Board is the board name.
	Board string
	// Sources lists the declaration files read, in processing order.
	Sources []string
	// Registry holds every resolved record.
	Registry *registry.Registry
	// Categories holds the per pin type display names, in class order.
	Categories []CategoryNames
	// Diagnostics contains non-fatal notes from resolution.
	Diagnostics diagnostic.Diagnostics
}

// HasSources reports whether the board has any declaration files. Boards
// without files produce no artifacts.
func (p *ResolvedPinout) HasSources() bool {
	return len(p.Sources) > 0
}

// CategoryNames are the display names of one pin type keyed by enum index.
type CategoryNames struct {
	PinType pintype.PinType
	// Category is nil when no record uses this pin type.
	Category *enums.Category
	Names    IndexedNames
}

// IndexedNames is a sparse index -> display name list.
type IndexedNames struct {
	names []string
	set   []bool
}

// Put stores name at index, growing the list with unset slots. Negative
// indices are ignored.
func (n *IndexedNames) Put(index int, name string) {
	if index < 0 {
		return
	}

	for len(n.names) <= index {
		n.names = append(n.names, "")
		n.set = append(n.set, false)
	}

	n.names[index] = name
	n.set[index] = true
}

// Len returns one past the highest index stored, or 0.
func (n IndexedNames) Len() int { return len(n.names) }

// At returns the name at index and whether one was stored.
func (n IndexedNames) At(index int) (string, bool) {
	if index < 0 || index >= len(n.names) {
		return "", false
	}

	return n.names[index], n.set[index]
}
