// Package record implements the on-disk framing for a single Bitcask log
// entry: a one-byte type tag, two varint length delimiters, the raw key and
// value bytes, and a trailing IEEE CRC-32 over everything that precedes it.
package record

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	storeerrors "github.com/iamNilotpal/ignite/pkg/errors"
)

// Type distinguishes the three kinds of record the log can hold.
type Type uint8

const (
	// TypeNormal is an ordinary put.
	TypeNormal Type = 1
	// TypeDelete is a tombstone.
	TypeDelete Type = 2
	// TypeTxnFinished is the terminator record that commits a batch.
	TypeTxnFinished Type = 3
)

// TxnFinishedKey is the fixed sentinel used as the user key component of a
// batch's terminator record.
const TxnFinishedKey = "txn-finish"

// crcSize is the width in bytes of the trailing checksum.
const crcSize = 4

// MaxHeaderSize bounds a record's header: one type byte plus two
// protobuf-style varints, each at most binary.MaxVarintLen32 bytes for a
// uint32 length.
const MaxHeaderSize = 1 + 2*binary.MaxVarintLen32

// Record is a single decoded log entry.
type Record struct {
	Type  Type
	Key   []byte
	Value []byte
}

// reader is the narrow read capability DecodeAt needs from a data file.
// internal/iomanager.File satisfies it.
type reader interface {
	ReadAt(buf []byte, offset int64) (int, error)
}

// Encode serializes r into its on-disk frame, computing and appending the
// trailing CRC-32 over the type byte, both varints, the key, and the value.
func Encode(r *Record) []byte {
	header := make([]byte, MaxHeaderSize)
	header[0] = byte(r.Type)

	n := 1
	n += binary.PutUvarint(header[n:], uint64(len(r.Key)))
	n += binary.PutUvarint(header[n:], uint64(len(r.Value)))

	total := n + len(r.Key) + len(r.Value) + crcSize
	buf := make([]byte, total)
	copy(buf, header[:n])
	copy(buf[n:], r.Key)
	copy(buf[n+len(r.Key):], r.Value)

	crc := crc32.ChecksumIEEE(buf[:n+len(r.Key)+len(r.Value)])
	binary.BigEndian.PutUint32(buf[n+len(r.Key)+len(r.Value):], crc)

	return buf
}

// DecodeAt reads and validates a single record starting at offset in src,
// returning the decoded record and the number of bytes its frame occupied.
//
// It returns storeerrors.ErrReadEOF when the header region is exhausted or
// reads as an all-zero key_len/value_len pair — both signal the end of
// written data in this file, not a real record. It returns a *StorageError
// with ErrorCodeInvalidCRC when the trailing checksum does not match.
func DecodeAt(src reader, fileName string, offset int64) (*Record, int64, error) {
	headerBuf := make([]byte, MaxHeaderSize)
	n, err := src.ReadAt(headerBuf, offset)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, 0, storeerrors.NewReadFailedError(err, fileName, offset)
	}
	if n == 0 {
		return nil, 0, storeerrors.ErrReadEOF
	}
	headerBuf = headerBuf[:n]

	recType := Type(headerBuf[0])
	varints := bytes.NewReader(headerBuf[1:])

	keyLen, err := binary.ReadUvarint(varints)
	if err != nil {
		return nil, 0, storeerrors.ErrReadEOF
	}
	valueLen, err := binary.ReadUvarint(varints)
	if err != nil {
		return nil, 0, storeerrors.ErrReadEOF
	}
	if keyLen == 0 && valueLen == 0 {
		return nil, 0, storeerrors.ErrReadEOF
	}

	headerLen := len(headerBuf) - varints.Len()

	payloadLen := int(keyLen) + int(valueLen) + crcSize
	payload := make([]byte, payloadLen)
	if _, err := src.ReadAt(payload, offset+int64(headerLen)); err != nil {
		return nil, 0, storeerrors.ErrReadEOF
	}

	key := payload[:keyLen]
	value := payload[keyLen : keyLen+valueLen]
	wantCRC := binary.BigEndian.Uint32(payload[keyLen+valueLen:])

	gotCRC := crc32.NewIEEE()
	gotCRC.Write(headerBuf[:headerLen])
	gotCRC.Write(key)
	gotCRC.Write(value)
	if gotCRC.Sum32() != wantCRC {
		return nil, 0, storeerrors.NewInvalidCRCError(fileName, offset)
	}

	rec := &Record{Type: recType, Key: key, Value: value}
	return rec, int64(headerLen + payloadLen), nil
}

// EncodeFramedKey prepends seqNum as a varint to userKey, producing the
// on-disk key every record is stored under. seqNum == 0 marks a
// non-transactional write.
func EncodeFramedKey(seqNum uint64, userKey []byte) []byte {
	buf := make([]byte, binary.MaxVarintLen64+len(userKey))
	n := binary.PutUvarint(buf, seqNum)
	return append(buf[:n], userKey...)
}

// DecodeFramedKey splits a framed on-disk key back into its sequence number
// and user key.
func DecodeFramedKey(framed []byte) (seqNum uint64, userKey []byte, err error) {
	seqNum, n := binary.Uvarint(framed)
	if n <= 0 {
		return 0, nil, storeerrors.NewDirectoryCorruptedError("", "malformed framed key: varint decode failed")
	}
	return seqNum, framed[n:], nil
}
