// Package config holds the firmware tree layout and pin type table a run
// works with. Every field has a default; a YAML file overrides only the
// fields it sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pinout-generator/internal/board"
	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/pintype"
)

// Config is the run configuration.
type Config struct {
	// FirmwareRoot is the checkout all other paths are relative to.
	FirmwareRoot    string `yaml:"firmware_root"`
	BoardsDir       string `yaml:"boards_dir"`
	ConnectorsDir   string `yaml:"connectors_dir"`
	NamesFile       string `yaml:"names_file"`
	OutputsFile     string `yaml:"outputs_file"`
	DefinitionsFile string `yaml:"definitions_file"`
	// StampFile is written next to the artifacts; "" disables stamping.
	StampFile string `yaml:"stamp_file"`
	// EnumFile is the enum index, relative to FirmwareRoot unless absolute.
	EnumFile string          `yaml:"enum_file"`
	PinTypes []PinTypeConfig `yaml:"pin_types,omitempty"`
}

// PinTypeConfig overrides one pin type table entry.
type PinTypeConfig struct {
	Class          string `yaml:"class"`
	OutputEnumName string `yaml:"output_enum_name"`
	Category       string `yaml:"category"`
	NothingName    string `yaml:"nothing_name"`
}

// Default returns the conventional configuration.
func Default() *Config {
	l := board.DefaultLayout()

	return &Config{
		FirmwareRoot:    ".",
		BoardsDir:       l.BoardsDir,
		ConnectorsDir:   l.ConnectorsDir,
		NamesFile:       l.NamesFile,
		OutputsFile:     l.OutputsFile,
		DefinitionsFile: l.DefinitionsFile,
		StampFile:       ".pinout-stamp.cbor",
		EnumFile:        filepath.Join("config", "pin_enums.yaml"),
	}
}

// LoadFile loads a configuration from the YAML file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults restores fields an explicit empty value cleared.
func applyDefaults(cfg *Config) {
	def := Default()

	for _, f := range []struct{ dst, src *string }{
		{&cfg.FirmwareRoot, &def.FirmwareRoot},
		{&cfg.BoardsDir, &def.BoardsDir},
		{&cfg.NamesFile, &def.NamesFile},
		{&cfg.OutputsFile, &def.OutputsFile},
		{&cfg.DefinitionsFile, &def.DefinitionsFile},
		{&cfg.EnumFile, &def.EnumFile},
	} {
		if *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

// Layout returns the board file layout.
func (c *Config) Layout() board.Layout {
	return board.Layout{
		BoardsDir:       c.BoardsDir,
		ConnectorsDir:   c.ConnectorsDir,
		NamesFile:       c.NamesFile,
		OutputsFile:     c.OutputsFile,
		DefinitionsFile: c.DefinitionsFile,
	}
}

// EnumPath returns the enum file location.
func (c *Config) EnumPath() string {
	return c.path(c.EnumFile)
}

func (c *Config) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.FirmwareRoot, p)
}

// PinTable builds the pin type table: the defaults with every configured
// entry replacing the one of its class.
func (c *Config) PinTable() (*pintype.Table, error) {
	types := pintype.DefaultPinTypes()

	for _, o := range c.PinTypes {
		class, ok := pintype.ParseClass(o.Class)
		if !ok {
			return nil, fmt.Errorf("pin_types: unknown class %q", o.Class)
		}

		for i := range types {
			if types[i].Class == class {
				types[i] = pintype.PinType{
					Class:          class,
					OutputEnumName: o.OutputEnumName,
					Category:       o.Category,
					NothingName:    o.NothingName,
				}
			}
		}
	}

	return pintype.NewTable(types)
}

// Validate checks the configuration for mistakes that would only surface
// halfway through a run.
func (c *Config) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	outputs := map[string]string{}

	for _, f := range []struct{ key, name string }{
		{"names_file", c.NamesFile},
		{"outputs_file", c.OutputsFile},
		{"definitions_file", c.DefinitionsFile},
		{"stamp_file", c.StampFile},
	} {
		if f.name == "" {
			continue
		}

		if filepath.Base(f.name) != f.name {
			res.Rejectf("nested_output", f.key, "must be a file name, got %q", f.name)
		}

		if prev, ok := outputs[f.name]; ok {
			res.Rejectf("duplicate_output", f.key, "%s also writes %q", prev, f.name)
			continue
		}

		outputs[f.name] = f.key
	}

	seen := map[string]bool{}

	for i, o := range c.PinTypes {
		subject := fmt.Sprintf("pin_types[%d]", i)

		if _, ok := pintype.ParseClass(o.Class); !ok {
			res.Rejectf("unknown_class", subject, "unknown class %q", o.Class)
			continue
		}

		if seen[o.Class] {
			res.Rejectf("duplicate_class", subject, "class %s configured twice", o.Class)
		}

		seen[o.Class] = true

		if o.Category == "" || o.OutputEnumName == "" || o.NothingName == "" {
			res.Rejectf("incomplete_pin_type", subject, "class %s needs category, output_enum_name and nothing_name", o.Class)
		}
	}

	if c.ConnectorsDir == "" {
		res.Warnf("flat_layout", "connectors_dir", "empty, declarations are read from the board directory")
	}

	return res
}
