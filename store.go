package artefakt

// Store interfaces for all ledger state.
//
// Every backing store must implement KVStore. Settlement code never writes to
// a KVStore directly but works on a cache wrap obtained from a
// CacheableKVStore, so that a half-done settlement can be discarded without a
// trace.

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// SetDeleter is the write-only subset of a KVStore.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch groups writes to be applied to a store at once.
type Batch interface {
	SetDeleter

	// Write applies all the batched operations to the underlying store.
	Write() error
}

// CacheableKVStore is a KVStore that supports cache wrapping.
//
// A cache wrap is a scratch pad over the store, comparable to a database
// savepoint. Writes are kept in the wrap until Write copies them down, or
// Discard drops them.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch pad of uncommitted writes over a store.
//
// At the end, call Write to apply the cached writes to the parent store, or
// Discard to drop them. A cache wrap is itself cacheable, so checks may nest.
type KVCacheWrap interface {
	CacheableKVStore

	// Write applies the cached writes to the parent store.
	Write() error

	// Discard drops the cached writes, invalidating this wrap.
	Discard()
}

// CommitID identifies a committed store state.
type CommitID struct {
	Version int64
	Hash    []byte
}

// CommitKVStore is a store that persists committed versions of its state.
type CommitKVStore interface {
	CacheableKVStore

	// Commit persists the current state as the next version.
	Commit() (CommitID, error)

	// LatestVersion returns information on the latest persisted version.
	LatestVersion() CommitID

	// LoadLatestVersion loads the latest persisted state. If there was a
	// crash during the last commit, a stable older state is restored.
	LoadLatestVersion() error
}
