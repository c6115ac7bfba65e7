// Package declaration provides the YAML schema of board pin declaration
// files and the parser that expands them into resolved pin records.
//
// # Schema Overview
//
// A declaration file has the following structure:
//
//	meta: hellen_meta.h          # optional, enables "meta" references
//	pins:
//	  - id: PA5                  # single pin
//	    class: outputs
//	    type: ls                 # ls/inj select the low-side output group
//	    pin: 12
//	    ts_name: ___ - Injector  # "___" is replaced by the pin field
//	  - meta: H144_LS_1          # alias resolved through the meta header
//	    class: outputs
//	    ts_name: Injector 2
//	  - id: [PA6, EFI_ADC_0]     # one pin, several functions
//	    class: [outputs, analog_inputs]
//	    ts_name: Aux
//
// # Declaration Forms
//
// Each raw entry is classified into exactly one form:
//   - ScalarDecl: "id" is a string
//   - ArrayDecl: "id" is a list, "class" must be a list of the same length
//   - MetaDecl: "meta" is set and "id" is absent
//   - Placeholder: no "id" and no "meta"; skipped
//
// Entries lacking "class" or "ts_name" are skipped after meta resolution.
//
// # Alias Resolution
//
// Array entries pass every id through the meta mapping and keep unmapped
// ids unchanged. Meta entries must resolve, and the meta token itself is
// kept as the header value used in the generated outputs list.
package declaration
