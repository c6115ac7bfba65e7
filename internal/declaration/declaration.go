package declaration

import (
	"fmt"

	"pinout-generator/internal/diagnostic"
)

// Declaration is one classified entry of a declaration file. The concrete
// type is one of ScalarDecl, ArrayDecl, MetaDecl or Placeholder.
type Declaration interface {
	// Subject names the declaration in diagnostics.
	Subject() string
	isDeclaration()
}

// Attrs are the fields shared by every declaration form.
type Attrs struct {
	Class  Value
	TSName Value
	Pin    Value
	Type   Value
}

// ScalarDecl declares one pin by literal id.
type ScalarDecl struct {
	ID string
	Attrs
}

// ArrayDecl declares one physical pin with several functions.
type ArrayDecl struct {
	IDs []string
	Attrs
}

// MetaDecl declares one pin through a board meta alias.
type MetaDecl struct {
	Meta string
	Attrs
}

// Placeholder is an entry with neither id nor meta.
type Placeholder struct {
	Attrs
}

func (d ScalarDecl) Subject() string  { return d.ID }
func (d ArrayDecl) Subject() string   { return List(d.IDs...).String() }
func (d MetaDecl) Subject() string    { return "meta=" + d.Meta }
func (d Placeholder) Subject() string { return d.TSName.String() }

func (ScalarDecl) isDeclaration()  {}
func (ArrayDecl) isDeclaration()   {}
func (MetaDecl) isDeclaration()    {}
func (Placeholder) isDeclaration() {}

// Classify discriminates a raw entry by the shape of its id and meta fields.
func Classify(raw RawPin) (Declaration, error) {
	attrs := Attrs{Class: raw.Class, TSName: raw.TSName, Pin: raw.Pin, Type: raw.Type}

	if !raw.Meta.IsAbsent() {
		if !raw.Meta.IsString() {
			return nil, diagnostic.Malformed(raw.Meta.String(), "meta must be a string, got %s", raw.Meta.Kind)
		}

		if !raw.ID.IsAbsent() {
			return nil, diagnostic.Malformed(raw.ID.String(), "not expected with meta=%s", raw.Meta.Text)
		}

		return MetaDecl{Meta: raw.Meta.Text, Attrs: attrs}, nil
	}

	switch raw.ID.Kind {
	case KindAbsent:
		return Placeholder{Attrs: attrs}, nil
	case KindString:
		return ScalarDecl{ID: raw.ID.Text, Attrs: attrs}, nil
	case KindList:
		return ArrayDecl{IDs: raw.ID.List, Attrs: attrs}, nil
	default:
		return nil, diagnostic.Malformed(raw.ID.String(), "unexpected type of ID field: %s", raw.ID.Kind)
	}
}

// PinRecord is one resolved pin function ready for the registry.
type PinRecord struct {
	// ID is the physical pin identifier; not unique across records.
	ID string
	// DisplayName is the human-readable name shown in generated output.
	DisplayName string
	// Class is the electrical class tag as written in the declaration.
	Class string
	// Subtype is the optional output drive type ("ls", "inj", ...).
	Subtype string
	// HeaderValue is the token written to the generated outputs list.
	HeaderValue string
	// Source is the declaration file the record came from.
	Source string
}

func (r PinRecord) String() string {
	return fmt.Sprintf("%s/%s/%s", r.ID, r.Class, r.DisplayName)
}
