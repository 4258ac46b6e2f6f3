package engine

import (
	"github.com/iamNilotpal/ignite/internal/index"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// Iterator walks live key/value pairs in key order, joining the index
// snapshot with an on-demand value read from the log.
type Iterator struct {
	engine *Engine
	inner  index.Iterator
}

// NewIterator builds an Iterator over a snapshot of the index taken at this
// call. Entries written after construction are not visible to it.
func (e *Engine) NewIterator(opts options.IteratorOptions) *Iterator {
	return &Iterator{engine: e, inner: e.idx.Iterator(opts)}
}

// Rewind resets the iterator to its first entry.
func (it *Iterator) Rewind() { it.inner.Rewind() }

// Seek repositions the iterator at target, per the index's Seek semantics.
func (it *Iterator) Seek(target []byte) { it.inner.Seek(target) }

// Close releases the iterator. The index snapshot holds no external
// resources, but Close is exposed for symmetry and forward compatibility.
func (it *Iterator) Close() { it.inner.Close() }

// Next advances to the next live entry, skipping any index entry whose
// record no longer decodes as a live value — defensively tolerating a
// tombstone the index has not yet caught up with. It returns ok=false once
// the snapshot is exhausted.
func (it *Iterator) Next() (key, value []byte, ok bool) {
	for {
		k, loc, hasNext := it.inner.Next()
		if !hasNext {
			return nil, nil, false
		}

		rec, err := it.engine.readRecordAt(k, loc)
		if err != nil {
			it.engine.log.Warnw("iterator skipped unreadable entry", "key", string(k), "error", err)
			continue
		}
		if rec.Type == record.TypeDelete {
			continue
		}

		return k, rec.Value, true
	}
}

// Keys returns every live key currently in the index, in ascending key
// order.
func (e *Engine) Keys() [][]byte {
	return e.idx.Keys()
}

// Fold calls fn with every live key/value pair in key order, stopping early
// if fn returns false.
func (e *Engine) Fold(fn func(key, value []byte) bool) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}

	it := e.NewIterator(options.DefaultIteratorOptions())
	defer it.Close()

	for {
		key, value, ok := it.Next()
		if !ok {
			break
		}
		if !fn(key, value) {
			break
		}
	}

	return nil
}
