package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Inputs is the read side of one board run.
type Inputs interface {
	// Name returns the board name.
	Name() string
	// YAMLKeys lists the declaration files in processing order.
	YAMLKeys() ([]string, error)
	// Reader opens one declaration file.
	Reader(key string) (io.ReadCloser, error)
	// BoardMeta returns the raw lines of a meta header.
	BoardMeta(header string) ([]string, error)
	// InputFiles lists every file the run depends on, for cache keys.
	InputFiles() []string
}

// Artifact is a scoped writer; Close without Commit discards the content.
type Artifact interface {
	io.WriteCloser
	Commit() error
}

// Sink is the write side of one board run.
type Sink interface {
	BoardNamesWriter() (Artifact, error)
	OutputsWriter() (Artifact, error)
	DefinitionsWriter() (Artifact, error)
}

// Layout names the directories and files of a firmware tree.
type Layout struct {
	BoardsDir       string
	ConnectorsDir   string
	NamesFile       string
	OutputsFile     string
	DefinitionsFile string
}

// DefaultLayout returns the conventional firmware layout.
func DefaultLayout() Layout {
	return Layout{
		BoardsDir:       filepath.Join("config", "boards"),
		ConnectorsDir:   "connectors",
		NamesFile:       "generated_ts_name_by_pin.cpp",
		OutputsFile:     "generated_outputs.h",
		DefinitionsFile: "generated_pin_enums.txt",
	}
}

// FileSystem implements Inputs and Sink over a firmware checkout.
type FileSystem struct {
	root   string
	board  string
	layout Layout

	metaFiles []string
	yamlFiles []string
}

var (
	_ Inputs = (*FileSystem)(nil)
	_ Sink   = (*FileSystem)(nil)
)

// NewFileSystem creates the board source for board under root.
func NewFileSystem(root, board string, layout Layout) *FileSystem {
	return &FileSystem{root: root, board: board, layout: layout}
}

// Name implements Inputs.
func (fs *FileSystem) Name() string { return fs.board }

// ConnectorsDir returns the directory declaration files are read from.
func (fs *FileSystem) ConnectorsDir() string {
	return filepath.Join(fs.root, fs.layout.BoardsDir, fs.board, fs.layout.ConnectorsDir)
}

// YAMLKeys implements Inputs. A missing connectors directory yields no keys.
func (fs *FileSystem) YAMLKeys() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(fs.ConnectorsDir(), "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing declaration files: %w", err)
	}

	slices.Sort(matches)

	fs.yamlFiles = slices.Clone(matches)

	return matches, nil
}

// Reader implements Inputs.
func (fs *FileSystem) Reader(key string) (io.ReadCloser, error) {
	f, err := os.Open(key)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", key, err)
	}

	return f, nil
}

// BoardMeta implements Inputs. The header path is relative to the root.
func (fs *FileSystem) BoardMeta(header string) ([]string, error) {
	path := filepath.Join(fs.root, header)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening meta header: %w", err)
	}
	defer f.Close()

	var lines []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading meta header %s: %w", path, err)
	}

	if !slices.Contains(fs.metaFiles, path) {
		fs.metaFiles = append(fs.metaFiles, path)
	}

	return lines, nil
}

// InputFiles implements Inputs: declaration files then meta headers seen so far.
func (fs *FileSystem) InputFiles() []string {
	return append(slices.Clone(fs.yamlFiles), fs.metaFiles...)
}

// ArtifactPaths lists the files the Sink writes.
func (fs *FileSystem) ArtifactPaths() []string {
	return []string{
		fs.artifact(fs.layout.NamesFile),
		fs.artifact(fs.layout.OutputsFile),
		fs.artifact(fs.layout.DefinitionsFile),
	}
}

func (fs *FileSystem) artifact(name string) string {
	return filepath.Join(fs.ConnectorsDir(), name)
}

// BoardNamesWriter implements Sink.
func (fs *FileSystem) BoardNamesWriter() (Artifact, error) {
	return NewAtomicFile(fs.artifact(fs.layout.NamesFile))
}

// OutputsWriter implements Sink.
func (fs *FileSystem) OutputsWriter() (Artifact, error) {
	return NewAtomicFile(fs.artifact(fs.layout.OutputsFile))
}

// DefinitionsWriter implements Sink.
func (fs *FileSystem) DefinitionsWriter() (Artifact, error) {
	return NewAtomicFile(fs.artifact(fs.layout.DefinitionsFile))
}
