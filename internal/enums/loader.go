package enums

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the on-disk enum definition document.
type File struct {
	Enums map[string][]Entry `yaml:"enums"`
}

// Entry is one enum member. Value is nil when the index is implicit.
type Entry struct {
	Name  string `yaml:"name"`
	Value *int   `yaml:"value,omitempty"`
}

// UnmarshalYAML accepts either a bare name or a {name, value} mapping.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Name)

	case yaml.MappingNode:
		type plain Entry

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*e = Entry(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected enum name or {name, value}, got %v", node.Line, node.Kind)
	}
}

// LoadFile loads an enum index from the YAML file at path.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enum file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML enum definitions into an Index.
func Parse(data []byte) (*Index, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse enum YAML: %w", err)
	}

	return f.Build()
}

// Build assigns implicit indices and builds the Index.
func (f *File) Build() (*Index, error) {
	names := make([]string, 0, len(f.Enums))
	for name := range f.Enums {
		names = append(names, name)
	}

	slices.Sort(names)

	categories := make([]*Category, 0, len(names))

	for _, name := range names {
		entries := f.Enums[name]
		values := make([]Value, 0, len(entries))
		next := 0

		for _, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("category %s: entry without name", name)
			}

			if e.Value != nil {
				next = *e.Value
			}

			values = append(values, Value{Name: e.Name, Index: next})
			next++
		}

		c, err := NewCategory(name, values)
		if err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return NewIndex(categories...)
}
