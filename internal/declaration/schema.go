package declaration

import "strings"

// File is one parsed declaration file.
type File struct {
	// Meta names the board meta header aliases are resolved against.
	Meta Value `yaml:"meta"`
	// Pins lists the raw declarations in file order.
	Pins []RawPin `yaml:"pins"`
}

// RawPin is one loosely typed entry of the "pins" list.
type RawPin struct {
	ID     Value `yaml:"id"`
	Meta   Value `yaml:"meta"`
	Class  Value `yaml:"class"`
	Pin    Value `yaml:"pin"`
	TSName Value `yaml:"ts_name"`
	Type   Value `yaml:"type"`
}

// Line returns the first known source line of the entry's fields.
func (r RawPin) Line() int {
	for _, v := range []Value{r.ID, r.Meta, r.Class, r.TSName, r.Pin, r.Type} {
		if v.Line > 0 {
			return v.Line
		}
	}

	return 0
}

// ValueKind is the YAML shape of a Value.
type ValueKind int

const (
	// KindAbsent marks a missing or null field.
	KindAbsent ValueKind = iota
	// KindString is a YAML string scalar.
	KindString
	// KindScalar is a non-string scalar (number, bool).
	KindScalar
	// KindList is a sequence of scalars.
	KindList
	// KindOther is any other node (mapping, nested sequence).
	KindOther
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "other"
	}
}

// Value is a field that may be a string, another scalar, or a list.
type Value struct {
	Kind ValueKind
	// Text holds the scalar text for KindString and KindScalar.
	Text string
	// List holds the elements for KindList.
	List []string
	// Line is the source line, 0 when absent.
	Line int
}

// Str builds a string value.
func Str(s string) Value { return Value{Kind: KindString, Text: s} }

// List builds a list value.
func List(items ...string) Value { return Value{Kind: KindList, List: items} }

// IsAbsent reports whether the field was missing or null.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// IsString reports whether the field is a string scalar.
func (v Value) IsString() bool { return v.Kind == KindString }

// IsList reports whether the field is a list.
func (v Value) IsList() bool { return v.Kind == KindList }

// IsScalar reports whether the field is any scalar.
func (v Value) IsScalar() bool { return v.Kind == KindString || v.Kind == KindScalar }

// String renders the value for messages.
func (v Value) String() string {
	switch v.Kind {
	case KindAbsent:
		return "<absent>"
	case KindList:
		return "[" + strings.Join(v.List, ", ") + "]"
	default:
		return v.Text
	}
}
