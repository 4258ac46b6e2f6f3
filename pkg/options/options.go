// Package options provides data structures and functions for configuring
// the Ignite database. It defines the parameters that control storage
// layout, durability, and the in-memory index, together with the
// per-call options accepted by writes and iteration.
package options

import "strings"

// IndexType selects the in-memory index implementation an engine builds its
// KeyDir on top of. Both backends expose the same ordered Put/Get/Delete/
// Iterator/Keys contract; they differ only in their internal data structure.
type IndexType string

const (
	// IndexTypeBTree backs the index with an ordered B-tree. This is the
	// default: predictable memory layout and good range-scan locality.
	IndexTypeBTree IndexType = "BTREE"

	// IndexTypeSkipList backs the index with a skip list. Offered as an
	// alternative with simpler concurrent-read characteristics.
	IndexTypeSkipList IndexType = "SKIPLIST"
)

// Options configures an Ignite database instance.
type Options struct {
	// DirPath is the directory Ignite stores its data files in. The
	// directory is created on first Open if it does not already exist.
	DirPath string `json:"dirPath"`

	// DataFileSize is the maximum size in bytes the active data file is
	// allowed to reach before a new active file is rolled over.
	//
	//   - Default: 256MB
	//   - Minimum: 1MB
	//   - Maximum: 4GB
	DataFileSize uint64 `json:"dataFileSize"`

	// SyncWrites controls whether every write is fsynced to disk before
	// the call returns. When false, writes rely on the OS page cache and
	// are only guaranteed durable after an explicit Sync or a clean Close.
	SyncWrites bool `json:"syncWrites"`

	// IndexType selects the in-memory index backend.
	IndexType IndexType `json:"indexType"`

	// RepairOnOpen controls what recovery does when it finds a corrupted
	// trailing record (a CRC mismatch) in the last data file it scans —
	// the one pattern a crash mid-append can produce. When true, the file
	// is atomically truncated at the start of the first record that fails
	// its CRC check, so that record and everything after it are discarded
	// and every record before it is kept, and recovery continues; when
	// false (the default), recovery fails
	// with the underlying INVALID_CRC error instead of silently dropping
	// data.
	RepairOnOpen bool `json:"repairOnOpen"`
}

// OptionFunc modifies an Options value in place.
type OptionFunc func(*Options)

// WithDefaultOptions seeds Options with the package defaults. Apply it
// first and let later OptionFuncs override individual fields.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		def := NewDefaultOptions()
		o.DirPath = def.DirPath
		o.DataFileSize = def.DataFileSize
		o.SyncWrites = def.SyncWrites
		o.IndexType = def.IndexType
		o.RepairOnOpen = def.RepairOnOpen
	}
}

// WithDirPath sets the data directory.
func WithDirPath(path string) OptionFunc {
	return func(o *Options) {
		path = strings.TrimSpace(path)
		if path != "" {
			o.DirPath = path
		}
	}
}

// WithDataFileSize sets the active file rollover threshold. A size outside
// [MinDataFileSize, MaxDataFileSize] is ignored, leaving the current value.
func WithDataFileSize(size uint64) OptionFunc {
	return func(o *Options) {
		if size >= MinDataFileSize && size <= MaxDataFileSize {
			o.DataFileSize = size
		}
	}
}

// WithSyncWrites toggles fsync-per-write durability.
func WithSyncWrites(sync bool) OptionFunc {
	return func(o *Options) {
		o.SyncWrites = sync
	}
}

// WithIndexType selects the in-memory index backend.
func WithIndexType(indexType IndexType) OptionFunc {
	return func(o *Options) {
		switch indexType {
		case IndexTypeBTree, IndexTypeSkipList:
			o.IndexType = indexType
		}
	}
}

// WithRepairOnOpen toggles automatic truncation of a corrupted trailing
// record found in the last data file during recovery.
func WithRepairOnOpen(repair bool) OptionFunc {
	return func(o *Options) {
		o.RepairOnOpen = repair
	}
}

// WriteOptions configures a single write-batch commit.
type WriteOptions struct {
	// SyncWrites forces an fsync of the data file when the batch commits,
	// overriding Options.SyncWrites for this batch only.
	SyncWrites bool `json:"syncWrites"`

	// MaxBatchSize caps how many staged writes a batch may accumulate
	// before Commit refuses it with ErrorCodeBatchTooLarge.
	MaxBatchSize uint `json:"maxBatchSize"`
}

// WriteOptionFunc modifies a WriteOptions value in place.
type WriteOptionFunc func(*WriteOptions)

// DefaultWriteOptions returns the package's default batch-commit options.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		SyncWrites:   true,
		MaxBatchSize: DefaultMaxBatchSize,
	}
}

// WithWriteSyncWrites toggles the fsync-on-commit behavior for a batch.
func WithWriteSyncWrites(sync bool) WriteOptionFunc {
	return func(o *WriteOptions) {
		o.SyncWrites = sync
	}
}

// WithMaxBatchSize caps the number of staged writes a batch may hold.
func WithMaxBatchSize(max uint) WriteOptionFunc {
	return func(o *WriteOptions) {
		if max > 0 {
			o.MaxBatchSize = max
		}
	}
}

// IteratorOptions configures how an Iterator walks the index.
type IteratorOptions struct {
	// Prefix restricts iteration to keys sharing this byte prefix. A nil
	// or empty prefix matches every key.
	Prefix []byte `json:"prefix"`

	// Reverse walks keys from greatest to least instead of least to
	// greatest.
	Reverse bool `json:"reverse"`
}

// DefaultIteratorOptions returns the package's default iterator options:
// no prefix filter, forward order.
func DefaultIteratorOptions() IteratorOptions {
	return IteratorOptions{
		Prefix:  nil,
		Reverse: false,
	}
}
