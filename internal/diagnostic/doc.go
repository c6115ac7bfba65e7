// Package diagnostic provides the error taxonomy of the pinout resolver
// and structured non-fatal notes collected while resolving a board.
//
// Fatal errors (all abort the current board):
//   - ErrConfigurationConflict: one id declared with two display names
//   - ErrCategoryNotFound: an enum category was never loaded
//   - ErrUnresolvedReference: an id or meta token could not be resolved
//   - ErrMalformedDeclaration: shape violations in a declaration
//   - ErrEmptyMetaMapping: a meta reference with no mapping loaded
//
// Each sentinel has a typed counterpart carrying context; use errors.Is
// against the sentinel and errors.As for the details.
package diagnostic
