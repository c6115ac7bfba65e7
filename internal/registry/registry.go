// Package registry accumulates resolved pin records for one board,
// enforcing that every id keeps a single display name and grouping output
// pins by drive side.
package registry

import (
	"slices"
	"strings"

	"pinout-generator/internal/declaration"
	"pinout-generator/internal/diagnostic"
)

// OutputsClass is the class tag whose records are grouped by drive side.
const OutputsClass = "outputs"

// lowSideTypes select the low-side output group.
var lowSideTypes = []string{"ls", "inj"}

// Entry is one id -> display name pair.
type Entry struct {
	ID   string
	Name string
}

// Registry is the conflict-checked record store of a single board run.
type Registry struct {
	names    map[string]string
	records  []declaration.PinRecord
	lowSide  []string
	highSide []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Add stores a record. An id seen before must carry the same display name.
func (r *Registry) Add(rec declaration.PinRecord) error {
	if existing, ok := r.names[rec.ID]; ok && existing != rec.DisplayName {
		return &diagnostic.ConflictError{ID: rec.ID, Existing: existing, New: rec.DisplayName}
	}

	r.names[rec.ID] = rec.DisplayName

	if strings.EqualFold(rec.Class, OutputsClass) {
		if IsLowSide(rec.Subtype) {
			r.lowSide = append(r.lowSide, rec.HeaderValue)
		} else {
			r.highSide = append(r.highSide, rec.HeaderValue)
		}
	}

	r.records = append(r.records, rec)

	return nil
}

// IsLowSide reports whether an output drive type sinks current.
func IsLowSide(subtype string) bool {
	return slices.ContainsFunc(lowSideTypes, func(t string) bool {
		return strings.EqualFold(t, subtype)
	})
}

// Name returns the display name registered for id.
func (r *Registry) Name(id string) (string, bool) {
	n, ok := r.names[id]
	return n, ok
}

// Len returns the number of distinct ids.
func (r *Registry) Len() int { return len(r.names) }

// IsEmpty reports whether nothing was added.
func (r *Registry) IsEmpty() bool { return len(r.records) == 0 }

// Entries returns the id -> name mapping ordered by id.
func (r *Registry) Entries() []Entry {
	res := make([]Entry, 0, len(r.names))
	for id, name := range r.names {
		res = append(res, Entry{ID: id, Name: name})
	}

	slices.SortFunc(res, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })

	return res
}

// Records returns every added record in insertion order.
func (r *Registry) Records() []declaration.PinRecord { return slices.Clone(r.records) }

// LowSide returns low-side output header tokens in declaration order.
func (r *Registry) LowSide() []string { return slices.Clone(r.lowSide) }

// HighSide returns high-side output header tokens in declaration order.
func (r *Registry) HighSide() []string { return slices.Clone(r.highSide) }
