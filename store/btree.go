package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/nftswap/errors"
)

// btreeDegree is the branching factor of every cache btree.
const btreeDegree = 2

// MemStore returns a simple in memory store useful for tests. There is no
// persistence here.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// ShowOpser returns an ordered list of all operations performed.
type ShowOpser interface {
	ShowOps() []Op
}

// LogableStore returns a store, along with insight into all operations that
// were run on it.
func LogableStore() (CacheableKVStore, ShowOpser) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	return NewBTreeCacheWrap(e, b, nil), b
}

// BTreeCacheWrap places a btree cache over a KVStore. Every write is
// recorded both in the btree, so that it is visible to reads, and in the
// batch, so that it can be flushed to the backing store on Write.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a btree cache around back. All writes must go
// through the batch, which is why back is only readable.
//
// free may be nil, but set it to an existing list to reuse the memory of
// nodes released by another cache.
func NewBTreeCacheWrap(back ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(btreeDegree, free),
		free:  free,
		back:  back,
		batch: batch,
	}
}

// CacheWrap layers another btree on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch that writes to this cache.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all changes to the backing store and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all changes, returning the btree nodes to the free list.
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(setItem{bkey: bkey{key}, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(deletedItem{bkey{key}})
	return b.batch.Delete(key)
}

// Get reads from the btree if the key was modified, else from the backing
// store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	switch item := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Get(key)
	case setItem:
		return item.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %T", item)
	}
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	switch item := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %T", item)
	}
}

// Iterator combines the cached changes with the backing store content, in
// ascending key order.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return &cacheIterator{
		cached:    b.collect(start, end),
		parent:    parent,
		ascending: true,
	}, nil
}

// ReverseIterator combines the cached changes with the backing store
// content, in descending key order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	cached := b.collect(start, end)
	for i, j := 0, len(cached)-1; i < j; i, j = i+1, j-1 {
		cached[i], cached[j] = cached[j], cached[i]
	}
	return &cacheIterator{
		cached:    cached,
		parent:    parent,
		ascending: false,
	}, nil
}

// collect returns in ascending order all cached items with a key in
// [start, end). A nil bound is open.
func (b BTreeCacheWrap) collect(start, end []byte) []btree.Item {
	var items []btree.Item
	add := func(i btree.Item) bool {
		items = append(items, i)
		return true
	}
	switch {
	case start == nil && end == nil:
		b.bt.Ascend(add)
	case start == nil:
		b.bt.AscendLessThan(bkey{end}, add)
	case end == nil:
		b.bt.AscendGreaterOrEqual(bkey{start}, add)
	default:
		b.bt.AscendRange(bkey{start}, bkey{end}, add)
	}
	return items
}

// keyer is implemented by every item stored in the btree.
type keyer interface {
	Key() []byte
}

type bkey struct {
	key []byte
}

func (k bkey) Key() []byte {
	return k.key
}

// Less panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}

// cacheIterator merges a snapshot of the cached items with the iterator of
// the backing store. A cached item shadows the backing store entry with the
// same key and a deleted item hides it.
type cacheIterator struct {
	cached    []btree.Item
	parent    Iterator
	ascending bool

	// Next entry of the parent iterator, read ahead for comparison.
	pKey, pValue []byte
	pLoaded      bool
	pDone        bool
}

var _ Iterator = (*cacheIterator)(nil)

func (it *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := it.peekParent(); err != nil {
			return nil, nil, err
		}

		var item btree.Item
		switch {
		case len(it.cached) == 0 && it.pDone:
			return nil, nil, errors.ErrIteratorDone
		case len(it.cached) == 0:
			return it.takeParent()
		case it.pDone:
			item = it.popCached()
		default:
			cmp := bytes.Compare(it.cached[0].(keyer).Key(), it.pKey)
			if cmp == 0 {
				// Cached entry shadows the parent one.
				it.pLoaded = false
				item = it.popCached()
			} else if (cmp < 0) == it.ascending {
				item = it.popCached()
			} else {
				return it.takeParent()
			}
		}

		if s, ok := item.(setItem); ok {
			return s.key, s.value, nil
		}
	}
}

func (it *cacheIterator) popCached() btree.Item {
	item := it.cached[0]
	it.cached = it.cached[1:]
	return item
}

func (it *cacheIterator) takeParent() ([]byte, []byte, error) {
	it.pLoaded = false
	return it.pKey, it.pValue, nil
}

func (it *cacheIterator) peekParent() error {
	if it.pLoaded || it.pDone {
		return nil
	}
	key, value, err := it.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		it.pDone = true
		return nil
	case err != nil:
		return err
	}
	it.pKey, it.pValue, it.pLoaded = key, value, true
	return nil
}

func (it *cacheIterator) Release() {
	it.parent.Release()
	it.cached = nil
}
