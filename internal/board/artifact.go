package board

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// AtomicFile writes to a temporary sibling and renames it over the target
// on Commit.
type AtomicFile struct {
	path      string
	tmp       *os.File
	committed bool
	closed    bool
}

// NewAtomicFile starts a scoped write of path.
func NewAtomicFile(path string) (*AtomicFile, error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file for %s: %w", path, err)
	}

	return &AtomicFile{path: path, tmp: tmp}, nil
}

// Path returns the target path.
func (a *AtomicFile) Path() string { return a.path }

// Committed reports whether the content was published.
func (a *AtomicFile) Committed() bool { return a.committed }

// Write implements io.Writer.
func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.closed {
		return 0, os.ErrClosed
	}

	return a.tmp.Write(p)
}

// Commit publishes the written content at the target path.
func (a *AtomicFile) Commit() error {
	if a.closed {
		return os.ErrClosed
	}

	a.closed = true

	if err := a.tmp.Chmod(filePerm); err != nil {
		return errors.Join(fmt.Errorf("setting mode of %s: %w", a.path, err), a.discard())
	}

	if err := a.tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("closing %s: %w", a.path, err), os.Remove(a.tmp.Name()))
	}

	if err := os.Rename(a.tmp.Name(), a.path); err != nil {
		return errors.Join(fmt.Errorf("writing file %s: %w", a.path, err), os.Remove(a.tmp.Name()))
	}

	a.committed = true

	return nil
}

// Close discards the content unless Commit succeeded. It is safe to call
// more than once.
func (a *AtomicFile) Close() error {
	if a.closed {
		return nil
	}

	a.closed = true

	return a.discard()
}

func (a *AtomicFile) discard() error {
	_ = a.tmp.Close()

	if err := os.Remove(a.tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing temporary file: %w", err)
	}

	return nil
}
