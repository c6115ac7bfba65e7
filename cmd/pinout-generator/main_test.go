package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinout-generator/internal/diagnostic"
)

const testEnums = `
enums:
  output_pin: [NONE, PA5, PE3]
  adc_channel: [EFI_ADC_NONE, EFI_ADC_0]
  brain_input_pin: [NONE, PA5]
  switch_input_pin: [NONE]
`

type firmware struct {
	root string
}

func newFirmware(t *testing.T) firmware {
	t.Helper()

	fw := firmware{root: t.TempDir()}
	fw.write(t, "config/pin_enums.yaml", testEnums)

	return fw
}

func (fw firmware) write(t *testing.T, name, content string) {
	t.Helper()

	path := filepath.Join(fw.root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func (fw firmware) connectors(board string) string {
	return filepath.Join(fw.root, "config", "boards", board, "connectors")
}

func (fw firmware) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(append([]string{"-root", fw.root}, args...), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRunGeneratesArtifacts(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/meta.h", "#define INJ1 PE3\n")
	fw.write(t, "config/boards/s105/connectors/main.yaml", `
meta: config/boards/s105/meta.h
pins:
  - meta: INJ1
    class: outputs
    type: inj
    ts_name: Injector 1
  - id: [PA5, PA5]
    class: [outputs, event_inputs]
    ts_name: Cam
  - id: EFI_ADC_0
    class: analog_inputs
    ts_name: TPS
`)

	_, _, err := fw.run(t, "-board", "s105")
	require.NoError(t, err)

	dir := fw.connectors("s105")

	names, err := os.ReadFile(filepath.Join(dir, "generated_ts_name_by_pin.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(names), "// auto-generated by pinout-generator based on config/boards/s105/connectors/main.yaml\n")
	assert.Contains(t, string(names), "\t\tcase Gpio::PA5: return \"Cam\";\n\t\tcase Gpio::PE3: return \"Injector 1\";\n\t\tdefault: return nullptr;\n")
	assert.NotContains(t, string(names), "ADC")

	outputs, err := os.ReadFile(filepath.Join(dir, "generated_outputs.h"))
	require.NoError(t, err)
	assert.Contains(t, string(outputs), "Gpio GENERATED_OUTPUTS = {\n\tGpio::INJ1,\n\tGpio::PA5,\n}\n")

	defs, err := os.ReadFile(filepath.Join(dir, "generated_pin_enums.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(defs), "#define output_pin_e_enum \"NONE\",\"Cam\",\"Injector 1\"\n")
	assert.Contains(t, string(defs), "#define adc_channel_e_auto_enum 0=\"NONE\",1=\"TPS\"\n")

	assert.FileExists(t, filepath.Join(dir, ".pinout-stamp.cbor"))
}

func TestRunSkipsUnchangedBoards(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Cam}\n")

	_, _, err := fw.run(t, "s105")
	require.NoError(t, err)

	names := filepath.Join(fw.connectors("s105"), "generated_ts_name_by_pin.cpp")
	require.NoError(t, os.WriteFile(names, []byte("edited"), 0o644))

	_, stderr, err := fw.run(t, "s105")
	require.NoError(t, err)
	assert.Contains(t, stderr, "inputs unchanged")

	content, err := os.ReadFile(names)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(content))

	_, _, err = fw.run(t, "-force", "s105")
	require.NoError(t, err)

	content, err = os.ReadFile(names)
	require.NoError(t, err)
	assert.Contains(t, string(content), `return "Cam";`)

	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Crank}\n")

	_, _, err = fw.run(t, "s105")
	require.NoError(t, err)

	content, err = os.ReadFile(names)
	require.NoError(t, err)
	assert.Contains(t, string(content), `return "Crank";`)
}

func TestRunRestoresDeletedArtifacts(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Cam}\n")

	_, _, err := fw.run(t, "s105")
	require.NoError(t, err)

	outputs := filepath.Join(fw.connectors("s105"), "generated_outputs.h")
	require.NoError(t, os.Remove(outputs))

	_, stderr, err := fw.run(t, "s105")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "inputs unchanged")
	assert.FileExists(t, outputs)
}

func TestRunReplacesStaleDefinitions(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Cam}\n")

	_, _, err := fw.run(t, "s105")
	require.NoError(t, err)

	defs := filepath.Join(fw.connectors("s105"), "generated_pin_enums.txt")
	content, err := os.ReadFile(defs)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#define output_pin_e_enum")

	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {ts_name: spare}\n")

	_, _, err = fw.run(t, "s105")
	require.NoError(t, err)

	content, err = os.ReadFile(defs)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "#define")
	assert.Contains(t, string(content), "based on config/boards/s105/connectors/main.yaml\n")
}

func TestRunConflictWritesNothing(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/connectors/a.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Injector1}\n")
	fw.write(t, "config/boards/s105/connectors/b.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Injector2}\n")

	_, _, err := fw.run(t, "-board", "s105")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrConfigurationConflict))

	entries, err := os.ReadDir(fw.connectors("s105"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunContinuesAfterFailedBoard(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/bad/connectors/a.yaml", "pins:\n  - {id: PB1, class: outputs, ts_name: X}\n")
	fw.write(t, "config/boards/good/connectors/a.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Y}\n")

	_, _, err := fw.run(t, "-board", "bad,good")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrUnresolvedReference))
	assert.Contains(t, err.Error(), "board bad")

	assert.FileExists(t, filepath.Join(fw.connectors("good"), "generated_outputs.h"))
	assert.NoFileExists(t, filepath.Join(fw.connectors("bad"), "generated_outputs.h"))
}

func TestRunBoardWithoutDeclarations(t *testing.T) {
	fw := newFirmware(t)

	_, stderr, err := fw.run(t, "-v", "-board", "empty")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no declarations")
	assert.NoDirExists(t, fw.connectors("empty"))
}

func TestRunDump(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "config/boards/s105/connectors/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Cam}\n")

	stdout, _, err := fw.run(t, "-dump", "-force", "s105")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ResolvedPinout")
	assert.Contains(t, stdout, "Cam")
}

func TestRunConfigFile(t *testing.T) {
	fw := newFirmware(t)
	fw.write(t, "enums/custom.yaml", testEnums)
	fw.write(t, "config/boards/s105/pins/main.yaml", "pins:\n  - {id: PA5, class: outputs, ts_name: Cam}\n")
	fw.write(t, "pinout.yaml", `
connectors_dir: pins
enum_file: enums/custom.yaml
outputs_file: outputs.h
stamp_file: ""
`)

	_, _, err := fw.run(t, "-config", filepath.Join(fw.root, "pinout.yaml"), "s105")
	require.NoError(t, err)

	dir := filepath.Join(fw.root, "config", "boards", "s105", "pins")
	assert.FileExists(t, filepath.Join(dir, "outputs.h"))
	assert.NoFileExists(t, filepath.Join(dir, ".pinout-stamp.cbor"))
}

func TestRunUsage(t *testing.T) {
	var stderr bytes.Buffer

	err := run(nil, &bytes.Buffer{}, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: pinout-generator")

	fw := newFirmware(t)
	_, _, err = fw.run(t, "-enums", "missing.yaml", "s105")
	require.Error(t, err)
}
