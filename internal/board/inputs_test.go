package board

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileSystemInputs(t *testing.T) {
	root := t.TempDir()
	layout := DefaultLayout()
	conn := filepath.Join(root, "config", "boards", "s105", "connectors")

	writeFile(t, filepath.Join(conn, "b.yaml"), "pins: []\n")
	writeFile(t, filepath.Join(conn, "a.yaml"), "meta: config/boards/meta.h\n")
	writeFile(t, filepath.Join(conn, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, "config", "boards", "meta.h"), "#define INJ1 PE3\n\t#define INJ2 PE4\n")

	fs := NewFileSystem(root, "s105", layout)
	assert.Equal(t, "s105", fs.Name())
	assert.Equal(t, conn, fs.ConnectorsDir())

	keys, err := fs.YAMLKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(conn, "a.yaml"), filepath.Join(conn, "b.yaml")}, keys)

	r, err := fs.Reader(keys[0])
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Contains(t, string(data), "meta.h")

	lines, err := fs.BoardMeta("config/boards/meta.h")
	require.NoError(t, err)
	assert.Equal(t, []string{"#define INJ1 PE3", "\t#define INJ2 PE4"}, lines)

	_, err = fs.BoardMeta("config/boards/meta.h")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(conn, "a.yaml"),
		filepath.Join(conn, "b.yaml"),
		filepath.Join(root, "config", "boards", "meta.h"),
	}, fs.InputFiles())
}

func TestFileSystemMissingBoard(t *testing.T) {
	fs := NewFileSystem(t.TempDir(), "nope", DefaultLayout())

	keys, err := fs.YAMLKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = fs.BoardMeta("missing.h")
	require.Error(t, err)

	_, err = fs.Reader("missing.yaml")
	require.Error(t, err)
}

func TestAtomicFileCommit(t *testing.T) {
	root := t.TempDir()
	fs := NewFileSystem(root, "s105", DefaultLayout())

	w, err := fs.OutputsWriter()
	require.NoError(t, err)

	_, err = io.WriteString(w, "#pragma once\n")
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	require.NoError(t, w.Close())

	path := filepath.Join(fs.ConnectorsDir(), "generated_outputs.h")
	assert.Equal(t, []string{
		filepath.Join(fs.ConnectorsDir(), "generated_ts_name_by_pin.cpp"),
		path,
		filepath.Join(fs.ConnectorsDir(), "generated_pin_enums.txt"),
	}, fs.ArtifactPaths())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n", string(data))

	entries, err := os.ReadDir(fs.ConnectorsDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is gone")
}

func TestAtomicFileDiscard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated_ts_name_by_pin.cpp")
	writeFile(t, path, "previous")

	a, err := NewAtomicFile(path)
	require.NoError(t, err)

	_, err = a.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.False(t, a.Committed())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = a.Write([]byte("late"))
	require.ErrorIs(t, err, os.ErrClosed)
	require.ErrorIs(t, a.Commit(), os.ErrClosed)
}
