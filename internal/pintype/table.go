// Package pintype maps electrical classes to the enum categories and
// generated definition names they resolve against.
package pintype

import (
	"fmt"

	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/enums"
)

// PinType describes how one electrical class is resolved and projected.
type PinType struct {
	Class Class
	// OutputEnumName prefixes the generated per-category definitions.
	OutputEnumName string
	// Category is the enum category ids of this class are looked up in.
	Category string
	// NothingName is the symbolic name meaning "no pin assigned".
	NothingName string
}

// DefaultPinTypes returns the built-in table, one entry per class.
func DefaultPinTypes() []PinType {
	return []PinType{
		{Class: Outputs, OutputEnumName: "output_pin_e", Category: "output_pin", NothingName: "NONE"},
		{Class: AnalogInputs, OutputEnumName: "adc_channel_e", Category: "adc_channel", NothingName: "EFI_ADC_NONE"},
		{Class: EventInputs, OutputEnumName: "brain_input_pin_e", Category: "brain_input_pin", NothingName: "NONE"},
		{Class: SwitchInputs, OutputEnumName: "switch_input_pin_e", Category: "switch_input_pin", NothingName: "NONE"},
	}
}

// Table is a closed class -> PinType lookup covering every Class.
type Table struct {
	types [ClassTotal]PinType
}

// NewTable builds a table and fails unless every class has exactly one entry.
func NewTable(types []PinType) (*Table, error) {
	t := &Table{}
	seen := make(map[Class]bool, len(types))

	for _, pt := range types {
		if !pt.Class.IsValid() {
			return nil, fmt.Errorf("pin type table: invalid class %d", int(pt.Class))
		}

		if seen[pt.Class] {
			return nil, fmt.Errorf("pin type table: duplicate entry for %s", pt.Class)
		}

		if pt.Category == "" || pt.OutputEnumName == "" || pt.NothingName == "" {
			return nil, fmt.Errorf("pin type table: incomplete entry for %s", pt.Class)
		}

		seen[pt.Class] = true
		t.types[pt.Class] = pt
	}

	for _, c := range Classes() {
		if !seen[c] {
			return nil, fmt.Errorf("pin type table: no entry for %s", c)
		}
	}

	return t, nil
}

// DefaultTable returns the table built from DefaultPinTypes.
func DefaultTable() *Table {
	t, err := NewTable(DefaultPinTypes())
	if err != nil {
		panic(fmt.Sprintf("default pin type table: %v", err))
	}

	return t
}

// Get returns the entry of a valid class.
func (t *Table) Get(c Class) PinType {
	return t.types[c]
}

// Find resolves a class tag to its entry.
func (t *Table) Find(tag string) (PinType, bool) {
	c, ok := ParseClass(tag)
	if !ok {
		return PinType{}, false
	}

	return t.types[c], true
}

// All returns every entry in class order.
func (t *Table) All() []PinType {
	res := make([]PinType, 0, ClassTotal-1)
	for _, c := range Classes() {
		res = append(res, t.types[c])
	}

	return res
}

// Validate checks that every category the table refers to is loaded.
func (t *Table) Validate(idx *enums.Index) error {
	for _, pt := range t.All() {
		if !idx.Has(pt.Category) {
			return fmt.Errorf("pin type %s: %w", pt.Class, &diagnostic.CategoryNotFoundError{Category: pt.Category})
		}
	}

	return nil
}
