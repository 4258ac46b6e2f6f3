package iomanager

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "000000000.data")

	f, err := Open(path, "000000000.data")
	require.NoError(t, err)
	defer f.Close()

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestAppendAndReadAt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "000000000.data")

	f, err := Open(path, "000000000.data")
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Append([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = f.Append([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	buf := make([]byte, 5)
	read, err := f.ReadAt(buf, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, read)
	assert.Equal(t, "world", string(buf))
}

func TestReadAtPastEndReturnsEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "000000000.data")

	f, err := Open(path, "000000000.data")
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 10)
	_, err = f.ReadAt(buf, 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSizeTracksAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "000000000.data")

	f, err := Open(path, "000000000.data")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Append([]byte("abcdefgh"))
	require.NoError(t, err)

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
}

func TestReopenSeesPreviousContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "000000000.data")

	f1, err := Open(path, "000000000.data")
	require.NoError(t, err)
	_, err = f1.Append([]byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, f1.Sync())
	require.NoError(t, f1.Close())

	f2, err := Open(path, "000000000.data")
	require.NoError(t, err)
	defer f2.Close()

	size, err := f2.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)

	buf := make([]byte, 9)
	_, err = f2.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(buf))
}
