// Package index provides the in-memory mapping from user key to record
// location that every point read and iteration is served from. Two ordered
// backends are offered behind the same Index contract: a B-tree (default)
// and a skip list.
package index

import (
	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// Index is the ordered associative structure mapping user keys to their
// latest committed record location. Implementations must be safe for
// concurrent Get against Put/Delete; readers never block each other.
type Index interface {
	// Put inserts or replaces the location for key, returning whether an
	// entry previously existed.
	Put(key []byte, loc datafile.Location) bool

	// Get returns the location stored for key, if any.
	Get(key []byte) (datafile.Location, bool)

	// Delete removes key's entry, returning whether it existed.
	Delete(key []byte) bool

	// Iterator returns a snapshot iterator over the index as of this call,
	// honoring opts.Prefix and opts.Reverse.
	Iterator(opts options.IteratorOptions) Iterator

	// Keys returns every key currently in the index, in ascending order.
	Keys() [][]byte

	// Len returns the number of entries currently in the index.
	Len() int
}

// Iterator walks an index snapshot in key order.
type Iterator interface {
	// Rewind resets the iterator to its first position.
	Rewind()

	// Seek repositions the iterator: with Reverse=false, at the least key
	// >= target; with Reverse=true, at the greatest key <= target.
	Seek(target []byte)

	// Next returns the current (key, location) pair and advances, or
	// reports ok=false once the snapshot is exhausted.
	Next() (key []byte, loc datafile.Location, ok bool)

	// Close releases any resources held by the iterator.
	Close()
}

// New constructs an Index backed by the selected IndexType.
func New(indexType options.IndexType) Index {
	switch indexType {
	case options.IndexTypeSkipList:
		return newSkipListIndex()
	default:
		return newBTreeIndex()
	}
}
