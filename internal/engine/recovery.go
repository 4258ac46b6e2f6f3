package engine

import (
	"bytes"
	stdErrors "errors"
	"os"
	"sort"

	natomic "github.com/natefinch/atomic"

	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/internal/record"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

// bufferedWrite is a transactional record staged during recovery until its
// batch's TXN_FINISHED terminator is found, at which point it is applied,
// or discarded if the scan of every data file ends before the terminator
// ever appears.
type bufferedWrite struct {
	recType record.Type
	userKey []byte
	loc     datafile.Location
}

// recover replays every data file in ascending file-id order to rebuild the
// index, applying seq_num 0 records immediately and buffering transactional
// records per sequence number until their TXN_FINISHED terminator appears.
// It also advances the engine's sequence counter past every seq_num observed
// and resumes the active file at its true tail.
func (e *Engine) recover() error {
	ids := make([]uint32, 0, len(e.older)+1)
	for id := range e.older {
		ids = append(ids, id)
	}
	ids = append(ids, e.active.FileID())
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	pending := make(map[uint64][]bufferedWrite)
	var maxSeq uint64
	var activeTail uint64

	for _, id := range ids {
		df := e.fileByID(id)

		var offset uint64
		for {
			rec, n, err := df.ReadRecord(offset)
			if err != nil {
				if stdErrors.Is(err, errors.ErrReadEOF) {
					break
				}
				if se, ok := errors.AsStorageError(err); ok && se.Code() == errors.ErrorCodeInvalidCRC &&
					id == e.active.FileID() && e.opts.RepairOnOpen {
					newActive, repairErr := repairCorruptTail(e.dirPath, df, offset)
					if repairErr != nil {
						return repairErr
					}
					e.active = newActive
					df = newActive
					e.log.Warnw(
						"truncated corrupted trailing record during recovery",
						"file", df.Name(), "goodLength", offset,
					)
					break
				}
				return err
			}

			seqNum, userKey, err := record.DecodeFramedKey(rec.Key)
			if err != nil {
				return err
			}
			if seqNum > maxSeq {
				maxSeq = seqNum
			}

			loc := datafile.Location{FileID: id, Offset: offset}

			switch {
			case seqNum == 0:
				e.applyRecoveredEffect(rec.Type, userKey, loc)
			case rec.Type == record.TypeTxnFinished:
				for _, bw := range pending[seqNum] {
					e.applyRecoveredEffect(bw.recType, bw.userKey, bw.loc)
				}
				delete(pending, seqNum)
			default:
				pending[seqNum] = append(pending[seqNum], bufferedWrite{
					recType: rec.Type, userKey: userKey, loc: loc,
				})
			}

			offset += uint64(n)
		}

		if id == e.active.FileID() {
			activeTail = offset
		}
	}

	e.active.SetWriteOffset(activeTail)
	// The counter represents the next sequence number to hand out, so it
	// must land strictly past every seq_num this scan observed; maxSeq is 0
	// when no transactional record was ever written, giving a floor of 1.
	e.seqNum.Store(maxSeq + 1)

	return nil
}

// repairCorruptTail atomically rewrites df's backing file truncated to its
// first goodLength bytes, discarding a trailing record a crash mid-append
// left with a bad checksum, then reopens it. The rewrite goes through a temp
// file and rename so a second crash during repair can never leave the file
// half-written; reopening is required because df's existing file descriptor
// still references the old, untruncated inode after the rename.
func repairCorruptTail(dirPath string, df *datafile.DataFile, goodLength uint64) (*datafile.DataFile, error) {
	path := df.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ClassifyFileOpenError(err, path, df.Name())
	}
	if uint64(len(data)) < goodLength {
		return nil, errors.NewDirectoryCorruptedError(path, "truncation target exceeds file length")
	}

	if err := natomic.WriteFile(path, bytes.NewReader(data[:goodLength])); err != nil {
		return nil, err
	}
	_ = df.Close()

	return datafile.Open(dirPath, df.FileID())
}

// applyRecoveredEffect applies a single recovered record's effect to the
// index. TXN_FINISHED terminators never reach here directly — they drain
// their sequence number's buffered writes instead of being applied
// themselves.
func (e *Engine) applyRecoveredEffect(recType record.Type, key []byte, loc datafile.Location) {
	switch recType {
	case record.TypeDelete:
		e.idx.Delete(key)
	case record.TypeNormal:
		e.idx.Put(key, loc)
	}
}
