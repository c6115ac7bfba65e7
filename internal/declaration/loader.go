package declaration

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Read parses a declaration document from r. An empty document yields an
// empty File.
func Read(r io.Reader) (*File, error) {
	var f File

	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	return &f, nil
}
