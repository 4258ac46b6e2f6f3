package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary. This includes file system operations like reading or
	// writing segment files, network operations when communicating with remote
	// systems, and device I/O when accessing storage hardware.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints. This maps
	// to HTTP 400-series errors and indicates problems with the request itself
	// rather than system failures.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories. These are the equivalent of HTTP 500 errors and
	// indicate bugs, assertion failures, or other programming errors that
	// shouldn't occur during normal operation.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Storage-specific error codes extend the base error taxonomy to handle the
// unique failure modes that occur in persistent storage systems. These codes
// represent problems that are specific to the storage layer of your key-value
// store, particularly focusing on segment file management and data persistence.
const (
	// ErrorCodeSegmentCorrupted indicates that a segment file's data has been
	// damaged or is in an inconsistent state.
	ErrorCodeSegmentCorrupted ErrorCode = "SEGMENT_CORRUPTED"

	// ErrorCodeHeaderReadFailure occurs when the system cannot read the header
	// portion of a segment file. Headers contain critical metadata about the
	// segment's structure, so header read failures prevent access to the
	// entire segment and all data it contains.
	ErrorCodeHeaderReadFailure ErrorCode = "HEADER_READ_FAILURE"

	// ErrorCodePayloadReadFailure indicates problems reading the actual data
	// content from segment files after successfully reading the header. This
	// represents a more localized failure compared to header problems, as the
	// segment structure is intact but specific data regions are inaccessible.
	ErrorCodePayloadReadFailure ErrorCode = "PAYLOAD_READ_FAILURE"

	// ErrorCodeRecoveryFailed indicates that the storage system's attempt to
	// recover from a previous failure was unsuccessful. This represents a
	// compound failure where both the original problem and the recovery
	// mechanism have failed, creating a more serious operational situation.
	ErrorCodeRecoveryFailed ErrorCode = "STORAGE_RECOVERY_FAILED"

	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	// This is distinct from generic IO errors because it has a specific resolution path:
	// the user needs to adjust file/directory permissions or run with elevated privileges.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	// This requires specific handling like cleanup operations or alerting administrators.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	// This requires administrative intervention to remount the filesystem with write permissions.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"

	// ErrorCodeInvalidCRC indicates that a record's trailing checksum did not match
	// the checksum computed over its frame. Recovery treats this as fatal by default
	// since it cannot tell how much of the file beyond that point is trustworthy.
	ErrorCodeInvalidCRC ErrorCode = "INVALID_CRC"

	// ErrorCodeDirectoryCorrupted indicates that data on disk does not look like
	// something this engine produced: a record whose framed key fails to decode,
	// or a repair whose truncation target lies past the end of the file.
	ErrorCodeDirectoryCorrupted ErrorCode = "DIRECTORY_CORRUPTED"

	// ErrorCodeParseFileIDFailed indicates that a data file's name did not carry a
	// parseable file id in the expected `NNNNNNNNN.data` shape.
	ErrorCodeParseFileIDFailed ErrorCode = "PARSE_FILE_ID_FAILED"

	// ErrorCodeDataFileNotFound indicates the index pointed at a file id that is
	// neither the active file nor any known older file — an invariant violation
	// unless the data directory was tampered with out from under the engine.
	ErrorCodeDataFileNotFound ErrorCode = "DATA_FILE_NOT_FOUND"

	// ErrorCodeOpenFailed indicates a data file could not be opened.
	ErrorCodeOpenFailed ErrorCode = "OPEN_FAILED"

	// ErrorCodeReadFailed indicates a positioned read from a data file failed
	// or returned fewer bytes than requested.
	ErrorCodeReadFailed ErrorCode = "READ_FAILED"

	// ErrorCodeWriteFailed indicates an append to a data file failed or wrote
	// fewer bytes than the caller supplied.
	ErrorCodeWriteFailed ErrorCode = "WRITE_FAILED"

	// ErrorCodeSyncFailed indicates fsync on a data file failed.
	ErrorCodeSyncFailed ErrorCode = "SYNC_FAILED"

	// ErrorCodeCreateDirFailed indicates the engine could not create its data directory.
	ErrorCodeCreateDirFailed ErrorCode = "CREATE_DIR_FAILED"

	// ErrorCodeReadDirFailed indicates the engine could not list its data directory.
	ErrorCodeReadDirFailed ErrorCode = "READ_DIR_FAILED"
)

// Input validation error codes specific to engine configuration and write calls.
const (
	// ErrorCodeKeyEmpty indicates an operation was attempted with a zero-length key.
	ErrorCodeKeyEmpty ErrorCode = "KEY_EMPTY"

	// ErrorCodeInvalidDBDir indicates Options.DirPath was empty or unusable.
	ErrorCodeInvalidDBDir ErrorCode = "INVALID_DB_DIR"

	// ErrorCodeInvalidFileSize indicates Options.DataFileSize was outside
	// [options.MinDataFileSize, options.MaxDataFileSize].
	ErrorCodeInvalidFileSize ErrorCode = "INVALID_FILE_SIZE"

	// ErrorCodeBatchTooLarge indicates a write batch's staged key count exceeded
	// WriteOptions.MaxBatchSize at commit time.
	ErrorCodeBatchTooLarge ErrorCode = "BATCH_TOO_LARGE"
)

// Lookup-related error codes.
const (
	// ErrorCodeKeyNotFound indicates a successful lookup that found no live
	// record for the given key — a normal result for Get, not a failure.
	ErrorCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
)

// Index-specific error codes used by IndexError.
const (
	// ErrorCodeIndexKeyNotFound mirrors ErrorCodeKeyNotFound at the index layer
	// and is the code NewKeyNotFoundError carries. The index implementations
	// report a miss as ok=false rather than as an error, and Get reports a
	// missing key with ErrorCodeKeyNotFound.
	ErrorCodeIndexKeyNotFound ErrorCode = "INDEX_KEY_NOT_FOUND"

	// ErrorCodeIndexInvalidSegmentID indicates a RecordPointer referenced a file
	// id the index has no record of ever having seen during recovery.
	ErrorCodeIndexInvalidSegmentID ErrorCode = "INDEX_INVALID_SEGMENT_ID"

	// ErrorCodeIndexTimestampExtraction indicates a data file name could not be
	// parsed for its embedded id/timestamp component.
	ErrorCodeIndexTimestampExtraction ErrorCode = "INDEX_TIMESTAMP_EXTRACTION_FAILED"

	// ErrorCodeIndexCorrupted indicates the in-memory index data structure
	// failed an internal consistency check.
	ErrorCodeIndexCorrupted ErrorCode = "INDEX_CORRUPTED"

	// ErrorCodeIndexUpdateFailed indicates an append to the log succeeded but
	// updating the in-memory index afterward failed, leaving an orphan record
	// that a future recovery pass will reconcile.
	ErrorCodeIndexUpdateFailed ErrorCode = "INDEX_UPDATE_FAILED"
)
