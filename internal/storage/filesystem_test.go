package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSystemStore(filepath.Join(dir, "nested", "uploads"))

	require.NoError(t, store.EnsureDir())
	// idempotent
	require.NoError(t, store.EnsureDir())

	info, err := os.Stat(filepath.Join(dir, "nested", "uploads"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndOpen(t *testing.T) {
	store := NewFileSystemStore(t.TempDir())
	content := []byte("test content")

	n, err := store.Save("abc_report.pdf", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)

	reader, size, err := store.Open("abc_report.pdf")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, int64(len(content)), size)

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveOverwritesExisting(t *testing.T) {
	store := NewFileSystemStore(t.TempDir())

	_, err := store.Save("name", bytes.NewReader([]byte("old")))
	require.NoError(t, err)
	_, err = store.Save("name", bytes.NewReader([]byte("new content")))
	require.NoError(t, err)

	reader, size, err := store.Open("name")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, int64(len("new content")), size)
}

func TestOpenMissingFile(t *testing.T) {
	store := NewFileSystemStore(t.TempDir())

	_, _, err := store.Open("missing")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSystemStore(dir)

	assert.Equal(t, filepath.Join(dir, "token_name.txt"), store.Path("token_name.txt"))
}

func TestDelete(t *testing.T) {
	store := NewFileSystemStore(t.TempDir())

	_, err := store.Save("victim", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Delete("victim"))

	_, _, err = store.Open("victim")
	assert.True(t, os.IsNotExist(err))

	// already-absent file is not an error
	require.NoError(t, store.Delete("victim"))
}
