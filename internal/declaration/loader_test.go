package declaration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	yaml := `
meta: hellen_meta.h
pins:
  - id: PA5
    class: outputs
    type: ls
    pin: 12
    ts_name: ___ - Injector
  - meta: H144_LS_1
    class: outputs
    ts_name: Injector 2
  - id: [PA6, EFI_ADC_0]
    class: [outputs, analog_inputs]
    ts_name: Aux
  - id: ~
    ts_name: placeholder
  - id: 42
    function: unused
  - id: {nested: map}
`

	f, err := Read(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "hellen_meta.h", f.Meta.Text)
	require.Len(t, f.Pins, 6)

	p0 := f.Pins[0]
	assert.Equal(t, KindString, p0.ID.Kind)
	assert.Equal(t, "PA5", p0.ID.Text)
	assert.Equal(t, KindScalar, p0.Pin.Kind)
	assert.Equal(t, "12", p0.Pin.Text)
	assert.Equal(t, "ls", p0.Type.Text)
	assert.Equal(t, 4, p0.ID.Line)
	assert.Equal(t, 4, p0.Line())
	assert.Equal(t, 9, f.Pins[1].Line())

	assert.True(t, f.Pins[1].ID.IsAbsent())
	assert.Equal(t, "H144_LS_1", f.Pins[1].Meta.Text)

	assert.Equal(t, KindList, f.Pins[2].ID.Kind)
	assert.Equal(t, []string{"PA6", "EFI_ADC_0"}, f.Pins[2].ID.List)
	assert.Equal(t, []string{"outputs", "analog_inputs"}, f.Pins[2].Class.List)

	assert.True(t, f.Pins[3].ID.IsAbsent())
	assert.Equal(t, KindScalar, f.Pins[4].ID.Kind)
	assert.Equal(t, KindOther, f.Pins[5].ID.Kind)
}

func TestReadEmptyDocument(t *testing.T) {
	f, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Pins)
	assert.True(t, f.Meta.IsAbsent())
}

func TestReadInvalidYAML(t *testing.T) {
	_, err := Read(strings.NewReader("pins: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse declaration YAML")
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "<absent>", Value{}.String())
	assert.Equal(t, "[A, B]", List("A", "B").String())
	assert.Equal(t, "PA5", Str("PA5").String())
	assert.Equal(t, "list", KindList.String())
}
