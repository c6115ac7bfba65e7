// Package plan provides the resolution pipeline that produces a
// ResolvedPinout consumed by code generation.
//
// Resolution pipeline, one board per run:
//  1. List the board's declaration files in order
//  2. For each file: build its meta mapping, parse and expand its
//     declarations, and add every record to the board's registry
//  3. Validate each record against the enum category of its class and
//     place its display name at the enum index
//  4. Collect skipped declarations as diagnostics
//
// Declarations are processed strictly in file listing order and, within a
// file, in declaration order; conflicts are reported at the first record
// that disagrees with an earlier one.
package plan
