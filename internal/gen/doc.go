// Package gen projects a resolved pinout into the generated artifacts
// consumed by the firmware build.
//
// Artifacts:
//   - board names: a C++ switch mapping each pin to its display name
//   - outputs: the GENERATED_OUTPUTS list, low-side outputs first
//   - definitions: per pin type "_auto_enum" (index="name" pairs) and
//     "_enum" (names aligned to enum indices) definitions
//
// Output is deterministic: the same pinout always renders byte-identical
// files. Rendering happens entirely in memory before anything is written.
package gen
