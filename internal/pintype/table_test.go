package pintype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/enums"
)

func TestClassString(t *testing.T) {
	assert.Equal(t, "outputs", Outputs.String())
	assert.Equal(t, "analog_inputs", AnalogInputs.String())
	assert.Equal(t, "switch_inputs", SwitchInputs.String())
	assert.Equal(t, "Class(0)", Class(0).String())
	assert.Len(t, Classes(), ClassTotal-1)
}

func TestParseClass(t *testing.T) {
	c, ok := ParseClass("event_inputs")
	assert.True(t, ok)
	assert.Equal(t, EventInputs, c)

	_, ok = ParseClass("Outputs")
	assert.False(t, ok, "tags are case sensitive")

	_, ok = ParseClass("Class(0)")
	assert.False(t, ok)
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	pt, ok := table.Find("outputs")
	require.True(t, ok)
	assert.Equal(t, "output_pin", pt.Category)
	assert.Equal(t, "output_pin_e", pt.OutputEnumName)
	assert.Equal(t, "NONE", pt.NothingName)

	_, ok = table.Find("leds")
	assert.False(t, ok)

	assert.Len(t, table.All(), 4)
	assert.Equal(t, "adc_channel", table.Get(AnalogInputs).Category)
}

func TestNewTableRequiresEveryClass(t *testing.T) {
	types := DefaultPinTypes()

	_, err := NewTable(types[:3])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entry for switch_inputs")

	_, err = NewTable(append(types, types[0]))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate entry for outputs")

	broken := DefaultPinTypes()
	broken[1].Category = ""
	_, err = NewTable(broken)
	require.Error(t, err)

	_, err = NewTable([]PinType{{Class: 9, Category: "x", OutputEnumName: "x", NothingName: "x"}})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	table := DefaultTable()

	var categories []*enums.Category

	for _, pt := range table.All() {
		c, err := enums.NewCategory(pt.Category, []enums.Value{{Name: pt.NothingName, Index: 0}})
		require.NoError(t, err)

		categories = append(categories, c)
	}

	idx, err := enums.NewIndex(categories...)
	require.NoError(t, err)
	require.NoError(t, table.Validate(idx))

	partial, err := enums.NewIndex(categories[0])
	require.NoError(t, err)

	err = table.Validate(partial)
	require.ErrorIs(t, err, diagnostic.ErrCategoryNotFound)
	assert.Contains(t, err.Error(), "adc_channel")
}
