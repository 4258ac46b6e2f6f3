package ignite

import (
	"testing"

	"github.com/iamNilotpal/ignite/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPutGetClose(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)

	require.NoError(t, db.Put([]byte("hello"), []byte("world")))

	val, err := db.Get([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), val)

	require.NoError(t, db.Close())
}

func TestWriteBatchThroughInstance(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)
	defer db.Close()

	b := db.NewWriteBatch(options.DefaultWriteOptions())
	require.NoError(t, b.Put([]byte("a"), []byte("1")))
	require.NoError(t, b.Put([]byte("b"), []byte("2")))
	require.NoError(t, b.Commit())

	val, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
}

func TestIteratorThroughInstance(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)
	defer db.Close()

	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, db.Put([]byte(k), []byte(k)))
	}

	it := db.NewIterator(options.DefaultIteratorOptions())
	defer it.Close()

	var got []string
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestListKeysAndFold(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("a"), []byte("1")))
	require.NoError(t, db.Put([]byte("b"), []byte("2")))

	assert.Len(t, db.ListKeys(), 2)

	var count int
	require.NoError(t, db.Fold(func(key, value []byte) bool {
		count++
		return true
	}))
	assert.Equal(t, 2, count)
}

func TestDeleteRemovesKey(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("a"), []byte("1")))
	require.NoError(t, db.Delete([]byte("a")))

	_, err = db.Get([]byte("a"))
	assert.Error(t, err)
}

func TestSyncDoesNotError(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDefaultOptions(), options.WithDirPath(dir))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("a"), []byte("1")))
	require.NoError(t, db.Sync())
}
