package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestCountLines(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int64
	}{
		{"empty", "", 0},
		{"no trailing terminator", "a\nb\nc", 3},
		{"trailing terminator", "a\nb\nc\n", 3},
		{"single line no terminator", "a", 1},
		{"single terminator only", "\n", 1},
		{"blank lines count", "\n\n\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countLines([]byte(tc.data)))
		})
	}
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("bound extension", func(t *testing.T) {
		path := writeFile(t, dir, "main.rs", []byte("fn main() {}\n"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Rust", record.Language)
		assert.Equal(t, int64(13), record.Bytes)
		assert.Equal(t, int64(1), record.Lines)
		assert.True(t, filepath.IsAbs(record.Path))
	})

	t.Run("extension case is ignored", func(t *testing.T) {
		path := writeFile(t, dir, "LEGACY.RS", []byte("x"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Rust", record.Language)
	})

	t.Run("unbound extension is unclassified", func(t *testing.T) {
		path := writeFile(t, dir, "notes.xyz", []byte("hello\n"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "", record.Language)
		assert.Equal(t, int64(6), record.Bytes)
	})

	t.Run("no extension is unclassified", func(t *testing.T) {
		path := writeFile(t, dir, "Makefile", []byte("all:\n"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "", record.Language)
	})

	t.Run("dotfile named like an extension is unclassified", func(t *testing.T) {
		// ".rs" has no extension; the whole name is the leading dot part.
		path := writeFile(t, dir, ".rs", []byte("not rust\n"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "", record.Language)
	})

	t.Run("dotfile with a real extension classifies", func(t *testing.T) {
		path := writeFile(t, dir, ".hidden.rs", []byte("fn x() {}\n"))
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Rust", record.Language)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.go", nil)
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(0), record.Bytes)
		assert.Equal(t, int64(0), record.Lines)
	})

	t.Run("binary content measures without error", func(t *testing.T) {
		data := []byte{0x00, 0xff, 0x10, '\n', 0x7f, 0x00}
		path := writeFile(t, dir, "blob.rs", data)
		record, err := classifyFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(6), record.Bytes)
		assert.Equal(t, int64(2), record.Lines)
	})

	t.Run("unreadable file errors", func(t *testing.T) {
		_, err := classifyFile(filepath.Join(dir, "does-not-exist.rs"))
		assert.Error(t, err)
	})
}
