package engine

import (
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

// Put writes a non-transactional record under seq_num 0, then installs its
// location in the index.
func (e *Engine) Put(key, value []byte) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	if len(key) == 0 {
		return errors.NewKeyEmptyError("Put")
	}

	loc, err := e.AppendFramed(0, record.TypeNormal, key, value, e.syncWrites())
	if err != nil {
		return err
	}

	e.idx.Put(key, loc)
	return nil
}

// Delete appends a tombstone for key and removes it from the index. Deleting
// a key with no live entry is a no-op.
func (e *Engine) Delete(key []byte) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	if len(key) == 0 {
		return errors.NewKeyEmptyError("Delete")
	}

	if _, ok := e.idx.Get(key); !ok {
		return nil
	}

	if _, err := e.AppendFramed(0, record.TypeDelete, key, nil, e.syncWrites()); err != nil {
		return err
	}

	e.idx.Delete(key)
	return nil
}
