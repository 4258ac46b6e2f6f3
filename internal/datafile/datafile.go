// Package datafile wraps a single append-only log segment: an I/O manager,
// its file id, and the monotonically increasing offset writes land at.
package datafile

import (
	"sync/atomic"

	"github.com/iamNilotpal/ignite/internal/iomanager"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/seginfo"
)

// Location identifies the start byte of a record inside a specific data file.
type Location struct {
	FileID uint32
	Offset uint64
}

// DataFile is one append-only log segment identified by a monotonic file id.
type DataFile struct {
	fileID      uint32
	name        string
	path        string
	file        iomanager.File
	writeOffset atomic.Uint64
}

// Open opens (creating if necessary) the data file for fileID under dirPath.
func Open(dirPath string, fileID uint32) (*DataFile, error) {
	name := seginfo.GenerateName(fileID)
	path := seginfo.DataFilePath(dirPath, fileID)

	f, err := iomanager.Open(path, name)
	if err != nil {
		return nil, err
	}

	size, err := f.Size()
	if err != nil {
		return nil, err
	}

	df := &DataFile{fileID: fileID, name: name, path: path, file: f}
	df.writeOffset.Store(uint64(size))
	return df, nil
}

// FileID returns the file's monotonic id.
func (d *DataFile) FileID() uint32 {
	return d.fileID
}

// Name returns the file's on-disk name.
func (d *DataFile) Name() string {
	return d.name
}

// Path returns the file's full on-disk path.
func (d *DataFile) Path() string {
	return d.path
}

// WriteOffset returns the current tail of the file: the total bytes
// appended to it so far.
func (d *DataFile) WriteOffset() uint64 {
	return d.writeOffset.Load()
}

// SetWriteOffset overrides the tracked write offset. Used only during
// recovery to resume the active file at its true tail after a scan.
func (d *DataFile) SetWriteOffset(offset uint64) {
	d.writeOffset.Store(offset)
}

// Append writes encoded to the end of the file and returns the location its
// frame now occupies. The tracked write offset advances by exactly the
// number of bytes written; a partial write is an error and leaves the
// offset unchanged. Callers encode the record themselves via record.Encode
// so the size can be checked against the rollover threshold before this
// call.
func (d *DataFile) Append(encoded []byte) (Location, error) {
	offset := d.writeOffset.Load()

	n, err := d.file.Append(encoded)
	if err != nil {
		return Location{}, err
	}

	d.writeOffset.Add(uint64(n))
	return Location{FileID: d.fileID, Offset: offset}, nil
}

// ReadRecord reads and decodes the record starting at offset, returning the
// record and the number of bytes its frame occupied.
func (d *DataFile) ReadRecord(offset uint64) (*record.Record, int64, error) {
	return record.DecodeAt(d.file, d.name, int64(offset))
}

// Sync durably persists every byte appended so far.
func (d *DataFile) Sync() error {
	return d.file.Sync()
}

// Close releases the underlying file descriptor.
func (d *DataFile) Close() error {
	return d.file.Close()
}
