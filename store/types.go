package store

import "github.com/artefakt-io/artefakt"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = artefakt.ReadOnlyKVStore
type KVStore = artefakt.KVStore
type SetDeleter = artefakt.SetDeleter
type Batch = artefakt.Batch
type CacheableKVStore = artefakt.CacheableKVStore
type KVCacheWrap = artefakt.KVCacheWrap
type CommitKVStore = artefakt.CommitKVStore
type CommitID = artefakt.CommitID
