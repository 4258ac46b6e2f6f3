package index

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// btreeDegree mirrors the default most google/btree consumers pick: wide
// enough to keep the tree shallow for the key counts an embedded store
// typically holds.
const btreeDegree = 32

// btreeItem is the google/btree.Item wrapping a single index entry.
type btreeItem struct {
	key []byte
	loc datafile.Location
}

// Less implements btree.Item.
func (it *btreeItem) Less(than btree.Item) bool {
	return bytes.Compare(it.key, than.(*btreeItem).key) < 0
}

// btreeIndex is the default Index backend: an ordered B-tree keyed by raw
// key bytes.
type btreeIndex struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

func newBTreeIndex() *btreeIndex {
	return &btreeIndex{tree: btree.New(btreeDegree)}
}

// Put implements Index.
func (b *btreeIndex) Put(key []byte, loc datafile.Location) bool {
	item := &btreeItem{key: append([]byte(nil), key...), loc: loc}

	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.tree.ReplaceOrInsert(item)
	return prev != nil
}

// Get implements Index.
func (b *btreeIndex) Get(key []byte) (datafile.Location, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	found := b.tree.Get(&btreeItem{key: key})
	if found == nil {
		return datafile.Location{}, false
	}
	return found.(*btreeItem).loc, true
}

// Delete implements Index.
func (b *btreeIndex) Delete(key []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := b.tree.Delete(&btreeItem{key: key})
	return removed != nil
}

// Len implements Index.
func (b *btreeIndex) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Len()
}

// Keys implements Index.
func (b *btreeIndex) Keys() [][]byte {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([][]byte, 0, b.tree.Len())
	b.tree.Ascend(func(i btree.Item) bool {
		keys = append(keys, i.(*btreeItem).key)
		return true
	})
	return keys
}

// Iterator implements Index. The snapshot is materialized eagerly so
// concurrent Put/Delete calls after construction never affect the walk.
func (b *btreeIndex) Iterator(opts options.IteratorOptions) Iterator {
	b.mu.RLock()
	defer b.mu.RUnlock()

	pairs := make([]pair, 0, b.tree.Len())
	walk := func(i btree.Item) bool {
		it := i.(*btreeItem)
		pairs = append(pairs, pair{key: it.key, loc: it.loc})
		return true
	}

	if opts.Reverse {
		b.tree.Descend(walk)
	} else {
		b.tree.Ascend(walk)
	}

	return newSliceIterator(pairs, opts)
}
