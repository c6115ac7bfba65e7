// Package mocks provides testify mocks of the board collaborators.
package mocks

import (
	"bytes"
	"io"

	"github.com/stretchr/testify/mock"

	"pinout-generator/internal/board"
)

// Inputs is a mock of board.Inputs.
type Inputs struct {
	mock.Mock
}

var _ board.Inputs = (*Inputs)(nil)

func (m *Inputs) Name() string {
	return m.Called().String(0)
}

func (m *Inputs) YAMLKeys() ([]string, error) {
	args := m.Called()
	keys, _ := args.Get(0).([]string)

	return keys, args.Error(1)
}

func (m *Inputs) Reader(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	r, _ := args.Get(0).(io.ReadCloser)

	return r, args.Error(1)
}

func (m *Inputs) BoardMeta(header string) ([]string, error) {
	args := m.Called(header)
	lines, _ := args.Get(0).([]string)

	return lines, args.Error(1)
}

func (m *Inputs) InputFiles() []string {
	files, _ := m.Called().Get(0).([]string)
	return files
}

// Sink is a mock of board.Sink.
type Sink struct {
	mock.Mock
}

var _ board.Sink = (*Sink)(nil)

func (m *Sink) BoardNamesWriter() (board.Artifact, error) {
	return m.artifact(m.Called())
}

func (m *Sink) OutputsWriter() (board.Artifact, error) {
	return m.artifact(m.Called())
}

func (m *Sink) DefinitionsWriter() (board.Artifact, error) {
	return m.artifact(m.Called())
}

func (m *Sink) artifact(args mock.Arguments) (board.Artifact, error) {
	a, _ := args.Get(0).(board.Artifact)
	return a, args.Error(1)
}

// Artifact is an in-memory board.Artifact.
type Artifact struct {
	buf       bytes.Buffer
	Committed bool
	Closed    bool
	// Content holds the bytes published by Commit.
	Content string
}

var _ board.Artifact = (*Artifact)(nil)

func (a *Artifact) Write(p []byte) (int, error) { return a.buf.Write(p) }

func (a *Artifact) Commit() error {
	a.Committed = true
	a.Content = a.buf.String()

	return nil
}

func (a *Artifact) Close() error {
	a.Closed = true
	return nil
}

// ReadCloser wraps a string as an io.ReadCloser.
func ReadCloser(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewBufferString(s))
}
