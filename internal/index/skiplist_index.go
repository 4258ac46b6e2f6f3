package index

import (
	"bytes"
	"math/rand"
	"sync"

	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// skipListMaxLevel bounds how tall the tower of forward pointers can grow.
const skipListMaxLevel = 32

// skipListNode is one entry in the skip list, carrying the key, its
// location, and a forward pointer per level it participates in.
type skipListNode struct {
	key     []byte
	loc     datafile.Location
	forward []*skipListNode
}

func newSkipListNode(key []byte, loc datafile.Location, levels int) *skipListNode {
	return &skipListNode{key: key, loc: loc, forward: make([]*skipListNode, levels+1)}
}

// skipListIndex is the alternative Index backend: an ordered skip list
// keyed by raw key bytes, guarded by a single RWMutex so readers never
// block each other.
type skipListIndex struct {
	mu     sync.RWMutex
	head   *skipListNode
	levels int
	size   int
}

func newSkipListIndex() *skipListIndex {
	return &skipListIndex{head: newSkipListNode(nil, datafile.Location{}, 0), levels: -1}
}

func randomLevel() int {
	level := 0
	for rand.Int31()&1 == 0 && level < skipListMaxLevel {
		level++
	}
	return level
}

func (s *skipListIndex) adjustLevels(level int) {
	prev := s.head.forward
	s.head = newSkipListNode(nil, datafile.Location{}, level)
	s.levels = level
	copy(s.head.forward, prev)
}

// Put implements Index.
func (s *skipListIndex) Put(key []byte, loc datafile.Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	newLevel := randomLevel()
	if newLevel > s.levels {
		s.adjustLevels(newLevel)
	}

	updates := make([]*skipListNode, s.levels+1)
	cur := s.head
	for level := s.levels; level >= 0; level-- {
		for cur.forward[level] != nil && bytes.Compare(cur.forward[level].key, key) < 0 {
			cur = cur.forward[level]
		}
		updates[level] = cur
	}

	if cur.forward[0] != nil && bytes.Equal(cur.forward[0].key, key) {
		cur.forward[0].loc = loc
		return true
	}

	node := newSkipListNode(append([]byte(nil), key...), loc, newLevel)
	for level := 0; level <= newLevel; level++ {
		node.forward[level] = updates[level].forward[level]
		updates[level].forward[level] = node
	}

	s.size++
	return false
}

// Get implements Index.
func (s *skipListIndex) Get(key []byte) (datafile.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.head
	for level := s.levels; level >= 0; level-- {
		for cur.forward[level] != nil && bytes.Compare(cur.forward[level].key, key) < 0 {
			cur = cur.forward[level]
		}
	}

	next := cur.forward[0]
	if next != nil && bytes.Equal(next.key, key) {
		return next.loc, true
	}
	return datafile.Location{}, false
}

// Delete implements Index.
func (s *skipListIndex) Delete(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.head
	updates := make([]*skipListNode, s.levels+1)
	for level := s.levels; level >= 0; level-- {
		for cur.forward[level] != nil && bytes.Compare(cur.forward[level].key, key) < 0 {
			cur = cur.forward[level]
		}
		updates[level] = cur
	}

	target := cur.forward[0]
	if target == nil || !bytes.Equal(target.key, key) {
		return false
	}

	for level := 0; level <= s.levels; level++ {
		if updates[level].forward[level] != target {
			continue
		}
		updates[level].forward[level] = target.forward[level]
	}

	for s.levels > 0 && s.head.forward[s.levels] == nil {
		s.levels--
		s.head.forward = s.head.forward[:s.levels+1]
	}

	s.size--
	return true
}

// Len implements Index.
func (s *skipListIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Keys implements Index.
func (s *skipListIndex) Keys() [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([][]byte, 0, s.size)
	for cur := s.head.forward[0]; cur != nil; cur = cur.forward[0] {
		keys = append(keys, cur.key)
	}
	return keys
}

// Iterator implements Index. The snapshot is materialized eagerly by
// walking the bottom level once, so concurrent Put/Delete calls after
// construction never affect the walk.
func (s *skipListIndex) Iterator(opts options.IteratorOptions) Iterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]pair, 0, s.size)
	for cur := s.head.forward[0]; cur != nil; cur = cur.forward[0] {
		pairs = append(pairs, pair{key: cur.key, loc: cur.loc})
	}

	if opts.Reverse {
		for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
	}

	return newSliceIterator(pairs, opts)
}
