package errors

import stdErrors "errors"

// ErrReadEOF is the internal sentinel the record codec returns when a record
// header reads all zeros — the empty tail of a file that was written to but
// never filled. Recovery catches it and moves on to the next file; it must
// never surface past the recovery loop.
var ErrReadEOF = stdErrors.New("record: read eof")

// NewInvalidCRCError creates an error for a record whose trailing checksum
// did not match the checksum computed over its frame.
func NewInvalidCRCError(fileName string, offset int64) *StorageError {
	return NewStorageError(
		nil, ErrorCodeInvalidCRC, "record checksum mismatch",
	).WithFileName(fileName).WithOffset(offset).WithDetail("operation", "decode_record")
}

// NewDirectoryCorruptedError creates an error for a data directory whose
// contents don't look like something this engine produced.
func NewDirectoryCorruptedError(path, reason string) *StorageError {
	return NewStorageError(
		nil, ErrorCodeDirectoryCorrupted, "data directory is corrupted",
	).WithPath(path).WithDetail("reason", reason)
}

// NewParseFileIDError creates an error for a data file name that did not
// carry a parseable file id.
func NewParseFileIDError(fileName string, cause error) *StorageError {
	return NewStorageError(
		cause, ErrorCodeParseFileIDFailed, "failed to parse file id from data file name",
	).WithFileName(fileName)
}

// NewReadFailedError creates an error for a failed or short positioned read.
func NewReadFailedError(cause error, fileName string, offset int64) *StorageError {
	return NewStorageError(
		cause, ErrorCodeReadFailed, "failed to read record from data file",
	).WithFileName(fileName).WithOffset(offset)
}

// NewWriteFailedError creates an error for a failed or short append.
func NewWriteFailedError(cause error, fileName string, offset int64) *StorageError {
	return NewStorageError(
		cause, ErrorCodeWriteFailed, "failed to append record to data file",
	).WithFileName(fileName).WithOffset(offset)
}

// NewOpenFailedError creates an error for a data file that could not be opened.
func NewOpenFailedError(cause error, path, fileName string) *StorageError {
	return NewStorageError(
		cause, ErrorCodeOpenFailed, "failed to open data file",
	).WithPath(path).WithFileName(fileName)
}

// NewDataFileSyncFailedError creates an error for a failed fsync on a data file.
func NewDataFileSyncFailedError(cause error, fileName string) *StorageError {
	return NewStorageError(
		cause, ErrorCodeSyncFailed, "failed to sync data file",
	).WithFileName(fileName)
}

// NewCreateDirFailedError creates an error for a data directory that could
// not be created during Open.
func NewCreateDirFailedError(cause error, path string) *StorageError {
	return NewStorageError(
		cause, ErrorCodeCreateDirFailed, "failed to create database directory",
	).WithPath(path)
}

// NewReadDirFailedError creates an error for a data directory that could not
// be listed during Open.
func NewReadDirFailedError(cause error, path string) *StorageError {
	return NewStorageError(
		cause, ErrorCodeReadDirFailed, "failed to read database directory",
	).WithPath(path)
}
