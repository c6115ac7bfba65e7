package gen

import (
	"slices"
	"strings"
)

// Definition name suffixes for the two projections of a pin type.
const (
	KeyValueFormSuffix = "_auto_enum"
	ArrayFormSuffix    = "_enum"
)

// Definition is one named generated value.
type Definition struct {
	Name  string
	Value string
}

// Definitions is a name -> value set where the first value added wins.
type Definitions struct {
	values map[string]string
}

// NewDefinitions creates an empty set.
func NewDefinitions() *Definitions {
	return &Definitions{values: make(map[string]string)}
}

// Add stores value under name unless name is already defined. It reports
// whether the value was stored.
func (d *Definitions) Add(name, value string) bool {
	if _, ok := d.values[name]; ok {
		return false
	}

	d.values[name] = value

	return true
}

// AddPair stores both projections of a pin type; empty pairs are skipped.
func (d *Definitions) AddPair(outputEnumName string, pair EnumPair) {
	if pair.IsEmpty() {
		return
	}

	d.Add(outputEnumName+KeyValueFormSuffix, pair.KeyValueForm)
	d.Add(outputEnumName+ArrayFormSuffix, pair.ArrayForm)
}

// Lookup returns a stored value.
func (d *Definitions) Lookup(name string) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Len returns the number of definitions.
func (d *Definitions) Len() int { return len(d.values) }

// Sorted returns the definitions ordered by name.
func (d *Definitions) Sorted() []Definition {
	res := make([]Definition, 0, len(d.values))
	for name, value := range d.values {
		res = append(res, Definition{Name: name, Value: value})
	}

	slices.SortFunc(res, func(a, b Definition) int { return strings.Compare(a.Name, b.Name) })

	return res
}
