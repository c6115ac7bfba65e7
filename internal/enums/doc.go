// Package enums provides the read-only enum index the resolver validates
// pin ids against.
//
// An Index maps a category name (for example "output_pin") to an ordered
// list of symbolic names, each with an integer value. Categories are built
// once from an enum-definition file and never mutated afterwards.
//
// The enum file has the following structure:
//
//	enums:
//	  output_pin:
//	    - NONE          # implicit value: previous + 1, starting at 0
//	    - PA5
//	    - {name: PE3, value: 12}
//	  adc_channel:
//	    - EFI_ADC_NONE
//	    - EFI_ADC_0
package enums
