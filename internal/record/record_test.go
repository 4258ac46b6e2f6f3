package record

import (
	"testing"

	storeerrors "github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReader is a narrow in-memory reader satisfying record.reader for tests.
type memReader struct {
	buf []byte
}

func (m *memReader) ReadAt(buf []byte, offset int64) (int, error) {
	if offset >= int64(len(m.buf)) {
		return 0, nil
	}
	n := copy(buf, m.buf[offset:])
	if n < len(buf) {
		return n, nil
	}
	return n, nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := &Record{Type: TypeNormal, Key: []byte("hello"), Value: []byte("world")}
	encoded := Encode(rec)

	src := &memReader{buf: encoded}
	got, n, err := DecodeAt(src, "test.data", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(encoded)), n)
	assert.Equal(t, rec.Type, got.Type)
	assert.Equal(t, rec.Key, got.Key)
	assert.Equal(t, rec.Value, got.Value)
}

func TestEncodeDecodeEmptyValue(t *testing.T) {
	rec := &Record{Type: TypeDelete, Key: []byte("tombstoned"), Value: nil}
	encoded := Encode(rec)

	src := &memReader{buf: encoded}
	got, _, err := DecodeAt(src, "test.data", 0)
	require.NoError(t, err)
	assert.Equal(t, TypeDelete, got.Type)
	assert.Equal(t, rec.Key, got.Key)
	assert.Empty(t, got.Value)
}

func TestDecodeAtMultipleRecordsSequentially(t *testing.T) {
	rec1 := &Record{Type: TypeNormal, Key: []byte("a"), Value: []byte("1")}
	rec2 := &Record{Type: TypeNormal, Key: []byte("b"), Value: []byte("2")}

	enc1 := Encode(rec1)
	enc2 := Encode(rec2)
	buf := append(append([]byte(nil), enc1...), enc2...)

	src := &memReader{buf: buf}

	got1, n1, err := DecodeAt(src, "test.data", 0)
	require.NoError(t, err)
	assert.Equal(t, rec1.Key, got1.Key)

	got2, _, err := DecodeAt(src, "test.data", n1)
	require.NoError(t, err)
	assert.Equal(t, rec2.Key, got2.Key)
}

func TestDecodeAtEmptyFileReturnsEOF(t *testing.T) {
	src := &memReader{buf: nil}
	_, _, err := DecodeAt(src, "test.data", 0)
	assert.ErrorIs(t, err, storeerrors.ErrReadEOF)
}

func TestDecodeAtCorruptedCRCFails(t *testing.T) {
	rec := &Record{Type: TypeNormal, Key: []byte("k"), Value: []byte("v")}
	encoded := Encode(rec)
	encoded[len(encoded)-1] ^= 0xFF // flip a byte in the trailing CRC

	src := &memReader{buf: encoded}
	_, _, err := DecodeAt(src, "test.data", 0)
	require.Error(t, err)

	se, ok := storeerrors.AsStorageError(err)
	require.True(t, ok)
	assert.Equal(t, storeerrors.ErrorCodeInvalidCRC, se.Code())
}

func TestFramedKeyRoundTrip(t *testing.T) {
	userKey := []byte("my-key")
	framed := EncodeFramedKey(7, userKey)

	seqNum, gotKey, err := DecodeFramedKey(framed)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), seqNum)
	assert.Equal(t, userKey, gotKey)
}

func TestFramedKeyZeroSeqNum(t *testing.T) {
	framed := EncodeFramedKey(0, []byte("x"))
	seqNum, userKey, err := DecodeFramedKey(framed)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seqNum)
	assert.Equal(t, []byte("x"), userKey)
}
