package engine

import (
	"os"
	"testing"

	"github.com/iamNilotpal/ignite/internal/batch"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
	"github.com/iamNilotpal/ignite/pkg/seginfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestEngine(t *testing.T, opts options.Options) *Engine {
	t.Helper()
	eng, err := Open(&Config{Options: &opts, Logger: logger.Nop()})
	require.NoError(t, err)
	return eng
}

func baseOptions(dir string) options.Options {
	opts := options.NewDefaultOptions()
	opts.DirPath = dir
	return opts
}

func TestOpenAndClose(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	require.NoError(t, eng.Close())
}

func TestCloseTwiceReturnsErrEngineClosed(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	require.NoError(t, eng.Close())
	assert.ErrorIs(t, eng.Close(), ErrEngineClosed)
}

func TestPutGetDelete(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	require.NoError(t, eng.Put([]byte("key1"), []byte("value1")))

	val, err := eng.Get([]byte("key1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value1"), val)

	require.NoError(t, eng.Delete([]byte("key1")))

	_, err = eng.Get([]byte("key1"))
	assert.Error(t, err)
}

func TestGetMissingKeyReturnsError(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	_, err := eng.Get([]byte("nope"))
	assert.Error(t, err)
}

func TestPutOverwritesValue(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	require.NoError(t, eng.Put([]byte("k"), []byte("v1")))
	require.NoError(t, eng.Put([]byte("k"), []byte("v2")))

	val, err := eng.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), val)
}

func TestDeleteOfAbsentKeyIsNoop(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	require.NoError(t, eng.Delete([]byte("never-written")))
	assert.Equal(t, 0, eng.Len())
}

// TestRestartPersistence verifies every put survives a close + reopen,
// rebuilding the index from the data file on disk.
func TestRestartPersistence(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(dir)

	eng := openTestEngine(t, opts)
	require.NoError(t, eng.Put([]byte("a"), []byte("1")))
	require.NoError(t, eng.Put([]byte("b"), []byte("2")))
	require.NoError(t, eng.Delete([]byte("a")))
	require.NoError(t, eng.Close())

	eng2 := openTestEngine(t, opts)
	defer eng2.Close()

	_, err := eng2.Get([]byte("a"))
	assert.Error(t, err, "a was deleted before the restart")

	val, err := eng2.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}

// TestRolloverAcrossManyPuts forces several active-file rollovers by
// capping DataFileSize well below what many writes need, then confirms
// every key is still reachable both in the live engine and after a
// restart that must replay multiple data files.
func TestRolloverAcrossManyPuts(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(dir)
	opts.DataFileSize = options.MinDataFileSize

	eng := openTestEngine(t, opts)

	const n = 64
	value := make([]byte, 64*1024) // large enough to force several rollovers
	for i := 0; i < n; i++ {
		key := []byte{byte(i)}
		require.NoError(t, eng.Put(key, value))
	}

	require.NoError(t, eng.Close())

	eng2 := openTestEngine(t, opts)
	defer eng2.Close()

	assert.Equal(t, n, eng2.Len())
	for i := 0; i < n; i++ {
		key := []byte{byte(i)}
		val, err := eng2.Get(key)
		require.NoError(t, err)
		assert.Len(t, val, len(value))
	}
}

// TestBatchCommitIsAtomic verifies that a batch's writes only become
// visible together, after the TXN_FINISHED terminator is appended.
func TestBatchCommitIsAtomic(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	b := batch.New(eng, options.DefaultWriteOptions())
	require.NoError(t, b.Put([]byte("x"), []byte("1")))
	require.NoError(t, b.Put([]byte("y"), []byte("2")))

	_, errX := eng.Get([]byte("x"))
	assert.Error(t, errX, "uncommitted batch writes must not be visible")

	require.NoError(t, b.Commit())

	valX, err := eng.Get([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), valX)

	valY, err := eng.Get([]byte("y"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), valY)
}

// TestBatchAcrossRestart verifies a committed batch's effects survive a
// restart, and that the sequence counter resumes strictly past every
// sequence number used by batches before the restart — a second batch
// committed after reopening must not reuse an already-used sequence number.
func TestBatchAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(dir)

	eng := openTestEngine(t, opts)

	b1 := batch.New(eng, options.DefaultWriteOptions())
	require.NoError(t, b1.Put([]byte("a"), []byte("1")))
	require.NoError(t, b1.Put([]byte("b"), []byte("2")))
	require.NoError(t, b1.Commit())

	b2 := batch.New(eng, options.DefaultWriteOptions())
	require.NoError(t, b2.Put([]byte("c"), []byte("3")))
	require.NoError(t, b2.Commit())

	require.NoError(t, eng.Close())

	eng2 := openTestEngine(t, opts)
	defer eng2.Close()

	for _, kv := range []struct{ key, val string }{{"a", "1"}, {"b", "2"}, {"c", "3"}} {
		val, err := eng2.Get([]byte(kv.key))
		require.NoError(t, err)
		assert.Equal(t, []byte(kv.val), val)
	}

	// Two batches of one and two writes allocated sequence numbers 1 and 2;
	// the counter must resume at 3 or greater, never reusing either.
	assert.GreaterOrEqual(t, eng2.seqNum.Load(), uint64(3))

	b3 := batch.New(eng2, options.DefaultWriteOptions())
	require.NoError(t, b3.Put([]byte("d"), []byte("4")))
	require.NoError(t, b3.Commit())

	val, err := eng2.Get([]byte("d"))
	require.NoError(t, err)
	assert.Equal(t, []byte("4"), val)
}

func TestKeysAndFold(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	require.NoError(t, eng.Put([]byte("b"), []byte("2")))
	require.NoError(t, eng.Put([]byte("a"), []byte("1")))
	require.NoError(t, eng.Put([]byte("c"), []byte("3")))

	assert.Len(t, eng.Keys(), 3)

	var visited []string
	err := eng.Fold(func(key, value []byte) bool {
		visited = append(visited, string(key))
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestFoldStopsEarly(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	require.NoError(t, eng.Put([]byte("a"), []byte("1")))
	require.NoError(t, eng.Put([]byte("b"), []byte("2")))

	var visited int
	err := eng.Fold(func(key, value []byte) bool {
		visited++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}

// TestRepairOnOpenTruncatesCorruptTail simulates a crash mid-append: a
// well-formed record followed by a trailing record whose CRC is corrupted.
// With RepairOnOpen disabled (the default), Open must fail; with it enabled,
// Open must succeed, keep the good record, and discard the corrupted one.
func TestRepairOnOpenTruncatesCorruptTail(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(dir)

	eng := openTestEngine(t, opts)
	require.NoError(t, eng.Put([]byte("good"), []byte("1")))
	require.NoError(t, eng.Close())

	path := seginfo.DataFilePath(dir, 0)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Append a well-formed record frame, then flip its trailing CRC byte so
	// recovery reads a structurally valid but checksum-invalid tail record.
	tail := record.Encode(&record.Record{
		Type: record.TypeNormal, Key: record.EncodeFramedKey(0, []byte("bad")), Value: []byte("2"),
	})
	tail[len(tail)-1] ^= 0xFF

	corrupt := append(append([]byte(nil), data...), tail...)
	require.NoError(t, os.WriteFile(path, corrupt, 0644))

	failOpts := opts
	failOpts.RepairOnOpen = false
	_, err = Open(&Config{Options: &failOpts, Logger: logger.Nop()})
	assert.Error(t, err)

	repairOpts := opts
	repairOpts.RepairOnOpen = true
	eng2, err := Open(&Config{Options: &repairOpts, Logger: logger.Nop()})
	require.NoError(t, err)
	defer eng2.Close()

	val, err := eng2.Get([]byte("good"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	require.NoError(t, eng2.Put([]byte("after-repair"), []byte("2")))
	val, err = eng2.Get([]byte("after-repair"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}

func TestErrEngineClosedIsDistinctFromNotFound(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	defer eng.Close()

	_, err := eng.Get([]byte("missing"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEngineClosed)

	se, ok := errors.AsStorageError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCodeKeyNotFound, se.Code())
}

func TestOperationsAfterCloseFail(t *testing.T) {
	dir := t.TempDir()
	eng := openTestEngine(t, baseOptions(dir))
	require.NoError(t, eng.Close())

	assert.ErrorIs(t, eng.Put([]byte("a"), []byte("1")), ErrEngineClosed)
	_, err := eng.Get([]byte("a"))
	assert.ErrorIs(t, err, ErrEngineClosed)
	assert.ErrorIs(t, eng.Delete([]byte("a")), ErrEngineClosed)
}
