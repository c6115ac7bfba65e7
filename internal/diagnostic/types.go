package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pinout-generator/internal/common"
)

// Severity grades a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one note about a declaration file or a configuration key.
type Diagnostic struct {
	Severity Severity
	// Code names the kind of note, e.g. "skipped_declaration".
	Code    string
	Message string
	// Source is the declaration file, empty for configuration notes.
	Source string
	// Line is the 1-based line in Source, 0 when unknown.
	Line int
	// Subject is the pin id, meta token or configuration key.
	Subject string
}

// Location renders "file:line", "file" or "".
func (d Diagnostic) Location() string {
	if d.Source == "" || d.Line <= 0 {
		return d.Source
	}

	return d.Source + ":" + strconv.Itoa(d.Line)
}

// String renders "location: subject: message (code)", omitting empty parts.
func (d Diagnostic) String() string {
	var b strings.Builder

	for _, part := range []string{d.Location(), d.Subject} {
		if part != "" {
			b.WriteString(part)
			b.WriteString(": ")
		}
	}

	b.WriteString(d.Message)

	if d.Code != "" {
		fmt.Fprintf(&b, " (%s)", d.Code)
	}

	return b.String()
}

// Diagnostics collects non-fatal notes from configuration checks and
// declaration parsing, bucketed by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (d *Diagnostics) Add(n Diagnostic) {
	switch n.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, n)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, n)
	default:
		d.Infos = append(d.Infos, n)
	}
}

// Skipped notes a declaration entry that produced no pins.
func (d *Diagnostics) Skipped(source string, line int, subject, detail string) {
	d.Add(Diagnostic{
		Severity: SeverityInfo,
		Code:     "skipped_declaration",
		Message:  "skipping incomplete declaration: " + detail,
		Source:   source,
		Line:     line,
		Subject:  subject,
	})
}

// Rejectf records a configuration error against key.
func (d *Diagnostics) Rejectf(code, key, format string, args ...any) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: fmt.Sprintf(format, args...), Subject: key})
}

// Warnf records a configuration warning against key.
func (d *Diagnostics) Warnf(code, key, format string, args ...any) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: fmt.Sprintf(format, args...), Subject: key})
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error joins the recorded errors, or returns nil when there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
