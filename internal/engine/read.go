package engine

import (
	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

// Get returns the current value for key, or a NotFound error if the key has
// no live entry (never written, or the last write was a delete).
func (e *Engine) Get(key []byte) ([]byte, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if len(key) == 0 {
		return nil, errors.NewKeyEmptyError("Get")
	}

	loc, ok := e.idx.Get(key)
	if !ok {
		return nil, errors.NewNotFoundError(string(key))
	}

	rec, err := e.readRecordAt(key, loc)
	if err != nil {
		return nil, err
	}
	if rec.Type == record.TypeDelete {
		return nil, errors.NewNotFoundError(string(key))
	}

	return rec.Value, nil
}

// readRecordAt resolves loc to the data file it names — the active file or
// a known older file — and decodes the record stored there.
func (e *Engine) readRecordAt(key []byte, loc datafile.Location) (*record.Record, error) {
	e.activeMu.RLock()
	if loc.FileID == e.active.FileID() {
		df := e.active
		e.activeMu.RUnlock()
		rec, _, err := df.ReadRecord(loc.Offset)
		return rec, err
	}
	e.activeMu.RUnlock()

	e.olderMu.RLock()
	df, ok := e.older[loc.FileID]
	e.olderMu.RUnlock()
	if !ok {
		return nil, errors.NewDataFileNotFoundError(loc.FileID, string(key))
	}

	rec, _, err := df.ReadRecord(loc.Offset)
	return rec, err
}
