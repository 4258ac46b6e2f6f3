// Package ignite provides a high-performance key/value data store designed
// for fast read and write operations, inspired by Bitcask. It combines an
// in-memory ordered index (KeyDir) with an append-only log structure on
// disk to achieve high throughput, trading memory (one index entry per key)
// for O(1) point writes and a single disk seek per point read.
package ignite

import (
	"github.com/iamNilotpal/ignite/internal/batch"
	"github.com/iamNilotpal/ignite/internal/engine"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// Instance is the primary entry point for interacting with an Ignite store:
// opening, closing, point reads/writes, batches, and iteration all go
// through it.
type Instance struct {
	engine *engine.Engine
}

// Open opens (creating if necessary) an Ignite database instance for the
// given service name, applying opts over the package defaults.
func Open(service string, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)

	cfg := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	eng, err := engine.Open(&engine.Config{Logger: log, Options: &cfg})
	if err != nil {
		return nil, err
	}

	return &Instance{engine: eng}, nil
}

// Close flushes and closes the underlying data files.
func (i *Instance) Close() error {
	return i.engine.Close()
}

// Sync fsyncs the active data file.
func (i *Instance) Sync() error {
	return i.engine.Sync()
}

// Put stores key with value, overwriting any previous value.
func (i *Instance) Put(key, value []byte) error {
	return i.engine.Put(key, value)
}

// Get returns the current value for key.
func (i *Instance) Get(key []byte) ([]byte, error) {
	return i.engine.Get(key)
}

// Delete removes key. Deleting an absent key is a no-op.
func (i *Instance) Delete(key []byte) error {
	return i.engine.Delete(key)
}

// ListKeys returns every live key currently in the index.
func (i *Instance) ListKeys() [][]byte {
	return i.engine.Keys()
}

// Fold calls fn with every live key/value pair in key order, stopping early
// if fn returns false.
func (i *Instance) Fold(fn func(key, value []byte) bool) error {
	return i.engine.Fold(fn)
}

// NewWriteBatch starts a new atomic write batch against this instance,
// using opts to bound its staging size and sync-on-commit behavior.
func (i *Instance) NewWriteBatch(opts options.WriteOptions) *batch.WriteBatch {
	return batch.New(i.engine, opts)
}

// Iterator walks live key/value pairs in key order.
type Iterator = engine.Iterator

// NewIterator builds an Iterator over a snapshot of the index taken at this
// call, per opts.
func (i *Instance) NewIterator(opts options.IteratorOptions) *Iterator {
	return i.engine.NewIterator(opts)
}
