// Package iomanager provides the narrow file capability the rest of the
// engine builds on: positioned reads, appending writes, and durable sync
// over a single file descriptor. It is kept behind an interface so an
// alternate backend (memory-mapped, for instance) can be substituted
// without touching datafile or engine.
package iomanager

import (
	"io"
	"os"

	"github.com/iamNilotpal/ignite/pkg/errors"
)

// File is the capability a data file needs from its underlying storage.
// Implementations must guarantee that append is atomic with respect to
// read: a read at offset o returns either bytes visible before or after an
// overlapping append, never a torn mix within the returned prefix.
// Concurrent reads are permitted; appends are serialized by the caller.
type File interface {
	// ReadAt reads len(buf) bytes starting at offset, following the
	// io.ReaderAt contract: it returns n == len(buf) with a nil error, or
	// n < len(buf) together with a non-nil error (io.EOF at the true end
	// of the file).
	ReadAt(buf []byte, offset int64) (int, error)

	// Append writes buf to the end of the file and returns the number of
	// bytes written. A short write is reported as an error rather than
	// returned silently.
	Append(buf []byte) (int, error)

	// Sync durably persists every byte previously returned by Append.
	Sync() error

	// Size returns the current length of the file in bytes.
	Size() (int64, error)

	// Close releases the underlying file descriptor.
	Close() error
}

// osFile is the default File implementation, backed by a single *os.File
// opened for both reading and appending.
type osFile struct {
	path string
	name string
	fd   *os.File
}

// Open opens (creating if necessary) the file at path for read/append
// access.
func Open(path, name string) (File, error) {
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.ClassifyFileOpenError(err, path, name)
	}
	return &osFile{path: path, name: name, fd: fd}, nil
}

// ReadAt implements File.
func (f *osFile) ReadAt(buf []byte, offset int64) (int, error) {
	n, err := f.fd.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return n, errors.NewReadFailedError(err, f.name, offset)
	}
	return n, err
}

// Append implements File.
func (f *osFile) Append(buf []byte) (int, error) {
	offset, err := f.fd.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, errors.NewWriteFailedError(err, f.name, 0)
	}

	n, err := f.fd.Write(buf)
	if err != nil {
		return n, errors.NewWriteFailedError(err, f.name, offset)
	}
	if n != len(buf) {
		return n, errors.NewWriteFailedError(io.ErrShortWrite, f.name, offset)
	}

	return n, nil
}

// Sync implements File.
func (f *osFile) Sync() error {
	if err := f.fd.Sync(); err != nil {
		return errors.ClassifySyncError(err, f.name, f.path, 0)
	}
	return nil
}

// Size implements File.
func (f *osFile) Size() (int64, error) {
	stat, err := f.fd.Stat()
	if err != nil {
		return 0, errors.NewReadFailedError(err, f.name, 0)
	}
	return stat.Size(), nil
}

// Close implements File.
func (f *osFile) Close() error {
	return f.fd.Close()
}
