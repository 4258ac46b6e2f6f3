package datafile

import (
	"testing"

	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFreshFileStartsAtZeroOffset(t *testing.T) {
	dir := t.TempDir()

	df, err := Open(dir, 0)
	require.NoError(t, err)
	defer df.Close()

	assert.Equal(t, uint32(0), df.FileID())
	assert.Equal(t, uint64(0), df.WriteOffset())
}

func TestAppendAndReadRecord(t *testing.T) {
	dir := t.TempDir()

	df, err := Open(dir, 0)
	require.NoError(t, err)
	defer df.Close()

	encoded := record.Encode(&record.Record{Type: record.TypeNormal, Key: []byte("k"), Value: []byte("v")})
	loc, err := df.Append(encoded)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), loc.FileID)
	assert.Equal(t, uint64(0), loc.Offset)

	rec, n, err := df.ReadRecord(loc.Offset)
	require.NoError(t, err)
	assert.Equal(t, int64(len(encoded)), n)
	assert.Equal(t, []byte("k"), rec.Key)
	assert.Equal(t, []byte("v"), rec.Value)
}

func TestAppendAdvancesWriteOffset(t *testing.T) {
	dir := t.TempDir()

	df, err := Open(dir, 0)
	require.NoError(t, err)
	defer df.Close()

	enc1 := record.Encode(&record.Record{Type: record.TypeNormal, Key: []byte("a"), Value: []byte("1")})
	loc1, err := df.Append(enc1)
	require.NoError(t, err)

	enc2 := record.Encode(&record.Record{Type: record.TypeNormal, Key: []byte("b"), Value: []byte("2")})
	loc2, err := df.Append(enc2)
	require.NoError(t, err)

	assert.Equal(t, uint64(len(enc1)), loc2.Offset)
	assert.Equal(t, uint64(len(enc1))+uint64(len(enc2)), df.WriteOffset())

	rec1, _, err := df.ReadRecord(loc1.Offset)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), rec1.Key)
}

func TestReopenResumesAtTrueSize(t *testing.T) {
	dir := t.TempDir()

	df1, err := Open(dir, 0)
	require.NoError(t, err)

	enc := record.Encode(&record.Record{Type: record.TypeNormal, Key: []byte("k"), Value: []byte("v")})
	_, err = df1.Append(enc)
	require.NoError(t, err)
	require.NoError(t, df1.Sync())
	require.NoError(t, df1.Close())

	df2, err := Open(dir, 0)
	require.NoError(t, err)
	defer df2.Close()

	assert.Equal(t, uint64(len(enc)), df2.WriteOffset())
}

func TestSetWriteOffsetOverridesTrackedTail(t *testing.T) {
	dir := t.TempDir()

	df, err := Open(dir, 0)
	require.NoError(t, err)
	defer df.Close()

	df.SetWriteOffset(42)
	assert.Equal(t, uint64(42), df.WriteOffset())
}
