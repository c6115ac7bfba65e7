package gen

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"

	"pinout-generator/internal/enums"
	"pinout-generator/internal/plan"
	"pinout-generator/internal/registry"
)

const (
	// NoneName is shown for the "no pin assigned" slot.
	NoneName = "NONE"
	// InvalidName is shown for enum slots without a declared pin.
	InvalidName = "INVALID"
	// AnalogMarker marks ids left out of the name lookup.
	AnalogMarker = "ADC"
)

// EnumPair holds both projections of one pin type.
type EnumPair struct {
	// KeyValueForm is `0="NONE",3="Injector 1"`, human sorted by name.
	KeyValueForm string
	// ArrayForm is `"NONE","INVALID","Injector 1"`, one entry per index.
	ArrayForm string
}

// IsEmpty reports whether the pin type had no names at all.
func (p EnumPair) IsEmpty() bool {
	return p.KeyValueForm == "" && p.ArrayForm == ""
}

// ProjectCategory renders the display names of one pin type. Index 0 is
// always "NONE" in the keyed form; in the array form, slots whose enum name
// is nothingName render "NONE" and slots without a display name "INVALID".
func ProjectCategory(nothingName string, category *enums.Category, names plan.IndexedNames) EnumPair {
	array := make([]string, 0, names.Len())
	keyed := make(map[int]string, names.Len())

	for i := range names.Len() {
		var key string
		if category != nil {
			key = category.ReverseLookup(i)
		}

		value, ok := names.At(i)

		if i == 0 {
			keyed[i] = NoneName
		} else if ok {
			keyed[i] = value
		}

		switch {
		case key == nothingName:
			array = append(array, quote(NoneName))
		case !ok:
			array = append(array, quote(InvalidName))
		default:
			array = append(array, quote(value))
		}
	}

	return EnumPair{
		KeyValueForm: HumanSortedKeyValue(keyed),
		ArrayForm:    strings.Join(array, ","),
	}
}

// HumanSortedKeyValue renders index="name" pairs ordered by name in
// natural order, with "NONE" first and ties broken by index.
func HumanSortedKeyValue(m map[int]string) string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b int) int {
		va, vb := m[a], m[b]

		switch {
		case va == vb:
			return a - b
		case va == NoneName:
			return -1
		case vb == NoneName:
			return 1
		case natural.Less(va, vb):
			return -1
		case natural.Less(vb, va):
			return 1
		default:
			return a - b
		}
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strconv.Itoa(k)+"="+quote(m[k]))
	}

	return strings.Join(parts, ",")
}

// NameLookupEntry is one case of the generated name lookup.
type NameLookupEntry struct {
	ID     string
	Quoted string
}

// ProjectNameLookup returns the id -> quoted name pairs ordered by id,
// dropping analog ids.
func ProjectNameLookup(reg *registry.Registry) []NameLookupEntry {
	var res []NameLookupEntry

	for _, e := range reg.Entries() {
		if strings.Contains(e.ID, AnalogMarker) {
			continue
		}

		res = append(res, NameLookupEntry{ID: e.ID, Quoted: quote(e.Name)})
	}

	return res
}

// ProjectOutputGroups returns the output tokens, low side first, each
// prefixed with prefix.
func ProjectOutputGroups(reg *registry.Registry, prefix string) []string {
	low, high := reg.LowSide(), reg.HighSide()
	res := make([]string, 0, len(low)+len(high))

	for _, token := range low {
		res = append(res, prefix+token)
	}

	for _, token := range high {
		res = append(res, prefix+token)
	}

	return res
}

func quote(s string) string {
	return `"` + s + `"`
}
