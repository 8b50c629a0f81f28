package store

import (
	"bytes"

	"github.com/google/btree"
)

// BTreeCacheable adds a simple btree-based CacheWrap
// strategy to a KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, NewNonAtomicBatch(b.KVStore))
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, NewNonAtomicBatch(e))
}

///////////////////////////////////////////////
// Actual CacheWrap implementation

// BTreeCacheWrap places a btree cache over a KVStore.
//
// All reads consult the cache first and fall back to the backing store. All
// writes go to the cache and into the batch, so they are applied to the
// backing store only upon Write. Discard drops them with no effect on the
// backing store; this is the rollback primitive the settlement flows rely on.
type BTreeCacheWrap struct {
	bt    *btree.BTreeG[treeItem]
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// treeItem is a node in the cache tree. A delete is cached as an item with
// the deleted flag set, shadowing whatever the backing store holds.
type treeItem struct {
	key     []byte
	value   []byte
	deleted bool
}

func lessItem(a, b treeItem) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// NewBTreeCacheWrap initializes a btree to cache around this kv store. Use
// ReadOnlyKVStore to emphasize that all writes must go through the batch.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch) BTreeCacheWrap {
	return BTreeCacheWrap{
		bt:    btree.NewG(2, lessItem),
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another btree on top of this one. The wraps may nest, so a
// partial settlement step can be tried and dropped without touching the outer
// scratch pad.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, NewNonAtomicBatch(b))
}

// Write syncs with the underlying store and invalidates this wrap.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all cached data.
func (b BTreeCacheWrap) Discard() {
	b.bt.Clear(false)
}

// Set writes to the btree and to the batch.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(treeItem{key: key, value: value})
	return b.batch.Set(key, value)
}

// Delete marks the key as removed in the btree and in the batch.
func (b BTreeCacheWrap) Delete(key []byte) error {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(treeItem{key: key, deleted: true})
	return b.batch.Delete(key)
}

// Get reads from the btree if cached, else from the backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	assertValidKey(key)
	if item, ok := b.bt.Get(treeItem{key: key}); ok {
		if item.deleted {
			return nil, nil
		}
		return item.value, nil
	}
	return b.back.Get(key)
}

// Has reads from the btree if cached, else from the backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	assertValidKey(key)
	if item, ok := b.bt.Get(treeItem{key: key}); ok {
		return !item.deleted, nil
	}
	return b.back.Has(key)
}

func assertValidKey(key []byte) {
	if key == nil {
		panic("nil key is not allowed")
	}
}
