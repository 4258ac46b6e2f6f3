// Package batch implements the stage-then-commit atomic write batch
// protocol: writes accumulate in memory keyed by user key, and Commit
// appends them to the log under a single sequence number followed by a
// TXN_FINISHED terminator, so a crash between the first record and the
// terminator leaves none of the batch visible on the next recovery.
package batch

import (
	stdErrors "errors"

	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// ErrBatchDiscarded is returned by Put/Delete/Commit once a batch has
// already been committed.
var ErrBatchDiscarded = stdErrors.New("batch: already committed")

// staged is one pending write in a batch's in-memory staging map.
type staged struct {
	recType record.Type
	value   []byte
}

// Committer is the subset of the engine a batch needs: appending a
// framed-key record under the batch-commit mutex, allocating the
// sequence number, and applying effects to the index once the batch is
// durable.
type Committer interface {
	// Lock acquires the engine-wide batch-commit mutex; Unlock releases it.
	Lock()
	Unlock()

	// NextSeqNum allocates the next transaction sequence number.
	NextSeqNum() uint64

	// AppendFramed appends a record whose on-disk key is
	// varint(seqNum) || userKey, syncing the active file afterward iff sync.
	AppendFramed(seqNum uint64, recType record.Type, userKey, value []byte, sync bool) (datafile.Location, error)

	// IndexPut installs loc as key's location in the index.
	IndexPut(key []byte, loc datafile.Location)

	// IndexDelete removes key's entry from the index.
	IndexDelete(key []byte)

	// IndexGet reports key's current location in the index, if any.
	IndexGet(key []byte) (datafile.Location, bool)
}

// WriteBatch stages puts and deletes and commits them atomically.
type WriteBatch struct {
	engine    Committer
	opts      options.WriteOptions
	committed bool
	pending   map[string]staged
}

// New creates a WriteBatch bound to engine, using opts to bound staging
// size and control sync-on-commit behavior.
func New(engine Committer, opts options.WriteOptions) *WriteBatch {
	return &WriteBatch{engine: engine, opts: opts, pending: make(map[string]staged)}
}

// Put stages a NORMAL write. The last write staged per key wins.
func (b *WriteBatch) Put(key, value []byte) error {
	if b.committed {
		return ErrBatchDiscarded
	}
	if len(key) == 0 {
		return errors.NewKeyEmptyError("Batch.Put")
	}

	b.pending[string(key)] = staged{recType: record.TypeNormal, value: append([]byte(nil), value...)}
	return nil
}

// Delete stages a tombstone. A key present only in the staging map (never
// written to the engine) is simply dropped from staging with no on-disk
// effect; a key absent from both the staging map and the engine's index is
// a no-op; otherwise a tombstone is staged to remove the key's on-disk value.
func (b *WriteBatch) Delete(key []byte) error {
	if b.committed {
		return ErrBatchDiscarded
	}
	if len(key) == 0 {
		return errors.NewKeyEmptyError("Batch.Delete")
	}

	if _, ok := b.engine.IndexGet(key); !ok {
		delete(b.pending, string(key))
		return nil
	}

	b.pending[string(key)] = staged{recType: record.TypeDelete}
	return nil
}

// Commit runs the protocol described in the package doc: allocate a
// sequence number, append every staged record plus a TXN_FINISHED
// terminator, then apply the staged effects to the index.
func (b *WriteBatch) Commit() error {
	if b.committed {
		return ErrBatchDiscarded
	}
	if len(b.pending) == 0 {
		b.committed = true
		return nil
	}
	if uint(len(b.pending)) > b.opts.MaxBatchSize {
		return errors.NewBatchTooLargeError(len(b.pending), b.opts.MaxBatchSize)
	}

	b.engine.Lock()
	defer b.engine.Unlock()

	seqNum := b.engine.NextSeqNum()

	type effect struct {
		recType record.Type
		key     []byte
		loc     datafile.Location
	}
	effects := make([]effect, 0, len(b.pending))

	for key, entry := range b.pending {
		userKey := []byte(key)
		loc, err := b.engine.AppendFramed(seqNum, entry.recType, userKey, entry.value, false)
		if err != nil {
			return err
		}
		effects = append(effects, effect{recType: entry.recType, key: userKey, loc: loc})
	}

	if _, err := b.engine.AppendFramed(
		seqNum, record.TypeTxnFinished, []byte(record.TxnFinishedKey), nil, b.opts.SyncWrites,
	); err != nil {
		return err
	}

	for _, e := range effects {
		if e.recType == record.TypeDelete {
			b.engine.IndexDelete(e.key)
		} else {
			b.engine.IndexPut(e.key, e.loc)
		}
	}

	b.pending = nil
	b.committed = true
	return nil
}
