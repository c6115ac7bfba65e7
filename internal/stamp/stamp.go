// Package stamp records which inputs a board's artifacts were generated
// from, so unchanged boards can be skipped.
//
// A stamp is a small CBOR document stored next to the artifacts. Its
// ConfigID is a name-based UUID over the paths and contents of every input
// file, so any edit to a declaration, meta header or enum file changes it.
package stamp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"pinout-generator/internal/board"
)

// Namespace scopes generated config IDs.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pinout-generator"))

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}

	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create stamp CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}

	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create stamp CBOR decoder mode: %v", err))
	}
}

// Stamp describes one generation run of a board.
type Stamp struct {
	ConfigID uuid.UUID `cbor:"1,keyasint"`
	Board    string    `cbor:"2,keyasint"`
	Tool     string    `cbor:"3,keyasint"`
	// Files are the input paths, relative to the firmware root.
	Files []string `cbor:"4,keyasint,omitempty"`
	// Generator identifies the rendered format of the artifacts.
	Generator string `cbor:"5,keyasint,omitempty"`
}

// Matches reports whether s and other stand for the same inputs rendered
// by the same generator.
func (s Stamp) Matches(other Stamp) bool {
	return s.ConfigID == other.ConfigID &&
		s.Board == other.Board &&
		s.Tool == other.Tool &&
		s.Generator == other.Generator
}

// New computes the stamp of board from its input files. Paths are recorded
// relative to root so the stamp survives moving the checkout.
func New(root, boardName, tool, generator string, files []string) (Stamp, error) {
	rel := make([]string, 0, len(files))

	var buf bytes.Buffer

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return Stamp{}, fmt.Errorf("reading input %s: %w", f, err)
		}

		name := f
		if r, err := filepath.Rel(root, f); err == nil {
			name = filepath.ToSlash(r)
		}

		rel = append(rel, name)

		buf.WriteString(name)
		buf.WriteByte(0)
		fmt.Fprintf(&buf, "%d", len(data))
		buf.WriteByte(0)
		buf.Write(data)
	}

	return Stamp{
		ConfigID:  uuid.NewSHA1(Namespace, buf.Bytes()),
		Board:     boardName,
		Tool:      tool,
		Files:     rel,
		Generator: generator,
	}, nil
}

// Encode serializes s as canonical CBOR.
func Encode(s Stamp) ([]byte, error) {
	return encMode.Marshal(s)
}

// Decode parses a CBOR stamp.
func Decode(data []byte) (Stamp, error) {
	var s Stamp
	if err := decMode.Unmarshal(data, &s); err != nil {
		return Stamp{}, err
	}

	return s, nil
}

// Load reads the stamp at path. A missing file is not an error and
// reports false.
func Load(path string) (Stamp, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Stamp{}, false, nil
	}

	if err != nil {
		return Stamp{}, false, fmt.Errorf("reading stamp: %w", err)
	}

	s, err := Decode(data)
	if err != nil {
		return Stamp{}, false, fmt.Errorf("decoding stamp %s: %w", path, err)
	}

	return s, true, nil
}

// Save writes s to path, replacing any previous stamp atomically.
func Save(path string, s Stamp) (err error) {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("encoding stamp: %w", err)
	}

	w, err := board.NewAtomicFile(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, w.Close())
	}()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing stamp: %w", err)
	}

	return w.Commit()
}

// UpToDate reports whether the stamp stored at path matches current and
// every artifact it covers still exists.
func UpToDate(path string, current Stamp, artifacts ...string) (bool, error) {
	stored, ok, err := Load(path)
	if err != nil || !ok {
		return false, err
	}

	if !stored.Matches(current) {
		return false, nil
	}

	for _, a := range artifacts {
		if _, err := os.Stat(a); err != nil {
			return false, nil
		}
	}

	return true, nil
}
