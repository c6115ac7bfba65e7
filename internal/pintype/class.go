package pintype

//go:generate go tool stringer -type=Class -linecomment -output=class_string.go

// Class is the electrical class of a pin declaration.
type Class int

const (
	_ Class = iota // zero value is an invalid class

	Outputs      // outputs
	AnalogInputs // analog_inputs
	EventInputs  // event_inputs
	SwitchInputs // switch_inputs

	// ClassTotal is one past the last valid class.
	ClassTotal = int(iota)
)

// Classes returns every valid class in declaration order.
func Classes() []Class {
	res := make([]Class, 0, ClassTotal-1)
	for c := Class(1); int(c) < ClassTotal; c++ {
		res = append(res, c)
	}

	return res
}

// IsValid reports whether c is one of the declared classes.
func (c Class) IsValid() bool {
	return c > 0 && int(c) < ClassTotal
}

// ParseClass resolves a declaration class tag. Tags are matched exactly.
func ParseClass(tag string) (Class, bool) {
	for _, c := range Classes() {
		if c.String() == tag {
			return c, true
		}
	}

	return 0, false
}
