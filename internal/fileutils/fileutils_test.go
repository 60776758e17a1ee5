package fileutils

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.html")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "acme", "statement.html")
	require.NoError(t, WriteFile(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestZipDirectory(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(src, "index.html"), []byte("index")))
	require.NoError(t, WriteFile(filepath.Join(src, "acme", "statement.html"), []byte("statement")))

	zipPath := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, ZipDirectory(src, zipPath))

	reader, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer reader.Close()

	contents := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(data)
	}

	assert.Equal(t, map[string]string{
		"index.html":          "index",
		"acme/statement.html": "statement",
	}, contents)
}

func TestZipDirectoryMissingSource(t *testing.T) {
	err := ZipDirectory(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out.zip"))
	assert.Error(t, err)
}
