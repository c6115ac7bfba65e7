package diagnostic

import (
	"errors"
	"fmt"
)

var (
	ErrConfigurationConflict = errors.New("configuration conflict")
	ErrCategoryNotFound      = errors.New("enum category not found")
	ErrUnresolvedReference   = errors.New("unresolved reference")
	ErrMalformedDeclaration  = errors.New("malformed declaration")
	ErrEmptyMetaMapping      = errors.New("empty meta mapping")
)

// ConflictError reports an id registered twice with different display names.
type ConflictError struct {
	ID       string
	Existing string
	New      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ID used multiple times with different ts_name: %s (%q vs %q)", e.ID, e.Existing, e.New)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConfigurationConflict }

// CategoryNotFoundError reports a pin type whose enum category was never loaded.
type CategoryNotFoundError struct {
	Category string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("enum for %s not found", e.Category)
}

func (e *CategoryNotFoundError) Is(target error) bool { return target == ErrCategoryNotFound }

// UnresolvedReferenceError reports an id missing from the enum category of its class.
type UnresolvedReferenceError struct {
	Board string
	ID    string
	Class string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Board == "" {
		return fmt.Sprintf("not found %s in %s", e.ID, e.Class)
	}

	return fmt.Sprintf("%s: not found %s in %s", e.Board, e.ID, e.Class)
}

func (e *UnresolvedReferenceError) Is(target error) bool { return target == ErrUnresolvedReference }

// UnresolvedMetaError reports a meta token with no entry in a non-empty mapping.
type UnresolvedMetaError struct {
	Meta string
}

func (e *UnresolvedMetaError) Error() string {
	return fmt.Sprintf("failing to resolve [%s]", e.Meta)
}

func (e *UnresolvedMetaError) Is(target error) bool { return target == ErrUnresolvedReference }

// EmptyMetaMappingError reports a meta token used while the board has no mapping.
type EmptyMetaMappingError struct {
	Meta string
}

func (e *EmptyMetaMappingError) Error() string {
	return fmt.Sprintf("empty meta mapping while resolving [%s]", e.Meta)
}

func (e *EmptyMetaMappingError) Is(target error) bool { return target == ErrEmptyMetaMapping }

// MalformedDeclarationError reports a declaration whose shape is invalid.
// Line is the 1-based line of the entry in its file, 0 when unknown.
type MalformedDeclarationError struct {
	Subject string
	Reason  string
	Line    int
}

func (e *MalformedDeclarationError) Error() string {
	msg := e.Reason
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", e.Subject, e.Reason)
	}

	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	return msg
}

func (e *MalformedDeclarationError) Is(target error) bool { return target == ErrMalformedDeclaration }

// Malformed is shorthand for a MalformedDeclarationError.
func Malformed(subject, format string, args ...any) error {
	return &MalformedDeclarationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
