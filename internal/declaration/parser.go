package declaration

import (
	"errors"
	"strings"

	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/meta"
)

// PinPlaceholder in a ts_name is replaced by the pin field.
const PinPlaceholder = "___"

// Parser expands the declarations of one file into pin records.
type Parser struct {
	// Source names the file in records and diagnostics.
	Source string
	// Mapping resolves meta references and array ids.
	Mapping meta.Mapping
	// Diagnostics receives notes about skipped entries; may be nil.
	Diagnostics *diagnostic.Diagnostics

	line int
}

// NewParser creates a Parser for one file.
func NewParser(source string, mapping meta.Mapping, diags *diagnostic.Diagnostics) *Parser {
	return &Parser{Source: source, Mapping: mapping, Diagnostics: diags}
}

// Parse classifies and expands every entry of f in order, handing each
// record to emit as soon as it is produced. The first error aborts;
// malformed entries report their line.
func (p *Parser) Parse(f *File, emit func(PinRecord) error) error {
	defer func() { p.line = 0 }()

	for _, raw := range f.Pins {
		p.line = raw.Line()

		decl, err := Classify(raw)
		if err == nil {
			err = p.Expand(decl, emit)
		}

		if err != nil {
			return atLine(err, p.line)
		}
	}

	return nil
}

func atLine(err error, line int) error {
	var malformed *diagnostic.MalformedDeclarationError
	if errors.As(err, &malformed) && malformed.Line == 0 {
		malformed.Line = line
	}

	return err
}

// Expand turns one classified declaration into records.
func (p *Parser) Expand(decl Declaration, emit func(PinRecord) error) error {
	switch d := decl.(type) {
	case MetaDecl:
		id, err := p.resolveMeta(d.Meta)
		if err != nil {
			return err
		}

		return p.expandScalar(id, d.Meta, d.Attrs, emit)

	case ScalarDecl:
		return p.expandScalar(d.ID, d.ID, d.Attrs, emit)

	case ArrayDecl:
		return p.expandArray(d, emit)

	case Placeholder:
		p.skip(decl.Subject(), "no id")
		return nil

	default:
		return diagnostic.Malformed(decl.Subject(), "unsupported declaration %T", decl)
	}
}

func (p *Parser) resolveMeta(token string) (string, error) {
	id, ok := p.Mapping.Lookup(token)
	if ok {
		return id, nil
	}

	if p.Mapping.IsEmpty() {
		return "", &diagnostic.EmptyMetaMappingError{Meta: token}
	}

	return "", &diagnostic.UnresolvedMetaError{Meta: token}
}

func (p *Parser) expandScalar(id, header string, a Attrs, emit func(PinRecord) error) error {
	if p.incomplete(id, a) {
		return nil
	}

	if id == "" {
		return diagnostic.Malformed(header, "unexpected empty ID field")
	}

	if !hasTextName(a) {
		return diagnostic.Malformed(id, "wrong ts_name: %s", a.TSName)
	}

	if !a.Class.IsString() {
		return diagnostic.Malformed(id, "wrong class: %s", a.Class)
	}

	var subtype string
	if a.Type.IsString() {
		subtype = a.Type.Text
	}

	return emit(PinRecord{
		ID:          id,
		DisplayName: displayName(a),
		Class:       a.Class.Text,
		Subtype:     subtype,
		HeaderValue: header,
		Source:      p.Source,
	})
}

func (p *Parser) expandArray(d ArrayDecl, emit func(PinRecord) error) error {
	subject := d.Subject()
	if p.incomplete(subject, d.Attrs) {
		return nil
	}

	if !d.Class.IsList() {
		return diagnostic.Malformed(subject, "expected multiple classes, got %s", d.Class)
	}

	if len(d.IDs) != len(d.Class.List) {
		return diagnostic.Malformed(d.Pin.String(), "id array length should match class array length: %s vs %s", subject, d.Class)
	}

	if !hasTextName(d.Attrs) {
		return diagnostic.Malformed(subject, "wrong ts_name: %s", d.TSName)
	}

	name := displayName(d.Attrs)

	for i, original := range d.IDs {
		err := emit(PinRecord{
			ID:          p.Mapping.Apply(original),
			DisplayName: name,
			Class:       d.Class.List[i],
			HeaderValue: original,
			Source:      p.Source,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// incomplete reports and skips entries without class or ts_name.
func (p *Parser) incomplete(subject string, a Attrs) bool {
	if !a.Class.IsAbsent() && !a.TSName.IsAbsent() {
		return false
	}

	p.skip(subject, "class="+a.Class.String()+" ts_name="+a.TSName.String())

	return true
}

func (p *Parser) skip(subject, detail string) {
	if p.Diagnostics == nil {
		return
	}

	p.Diagnostics.Skipped(p.Source, p.line, subject, detail)
}

// hasTextName reports whether ts_name yields a string. Non-string scalars
// only qualify once the pin substitution has turned them into text.
func hasTextName(a Attrs) bool {
	return a.TSName.IsString() || (a.TSName.IsScalar() && !a.Pin.IsAbsent())
}

func displayName(a Attrs) string {
	if a.Pin.IsAbsent() {
		return a.TSName.Text
	}

	return strings.ReplaceAll(a.TSName.Text, PinPlaceholder, a.Pin.String())
}
