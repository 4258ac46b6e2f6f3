package index

import (
	"bytes"
	"sort"

	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// pair is one materialized (key, location) entry in an iterator snapshot.
type pair struct {
	key []byte
	loc datafile.Location
}

// sliceIterator implements Iterator over a pre-sorted, pre-materialized
// snapshot shared by both index backends. pairs must already be ordered
// ascending (forward) or descending (reverse) by opts.Reverse before being
// handed here.
type sliceIterator struct {
	pairs   []pair
	opts    options.IteratorOptions
	pos     int
	reverse bool
}

func newSliceIterator(pairs []pair, opts options.IteratorOptions) *sliceIterator {
	return &sliceIterator{pairs: pairs, opts: opts, reverse: opts.Reverse}
}

// Rewind implements Iterator.
func (s *sliceIterator) Rewind() {
	s.pos = 0
}

// Seek implements Iterator. With Reverse=false the snapshot is ascending,
// so the least key >= target is the first element not less than target.
// With Reverse=true the snapshot is descending, so the greatest key <=
// target is the first element not greater than target.
func (s *sliceIterator) Seek(target []byte) {
	if s.reverse {
		s.pos = sort.Search(len(s.pairs), func(i int) bool {
			return bytes.Compare(s.pairs[i].key, target) <= 0
		})
		return
	}

	s.pos = sort.Search(len(s.pairs), func(i int) bool {
		return bytes.Compare(s.pairs[i].key, target) >= 0
	})
}

// Next implements Iterator, skipping entries that don't match the
// configured prefix.
func (s *sliceIterator) Next() ([]byte, datafile.Location, bool) {
	for s.pos < len(s.pairs) {
		p := s.pairs[s.pos]
		s.pos++

		if len(s.opts.Prefix) > 0 && !bytes.HasPrefix(p.key, s.opts.Prefix) {
			continue
		}
		return p.key, p.loc, true
	}
	return nil, datafile.Location{}, false
}

// Close implements Iterator. The slice-backed snapshot holds no external
// resources, so this is a no-op.
func (s *sliceIterator) Close() {}
