//nolint
package store

import "github.com/alms-io/alms"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = alms.KVStore
type ReadOnlyKVStore = alms.ReadOnlyKVStore
type SetDeleter = alms.SetDeleter
type Batch = alms.Batch
type Iterator = alms.Iterator
type CacheableKVStore = alms.CacheableKVStore
type KVCacheWrap = alms.KVCacheWrap
type CommitKVStore = alms.CommitKVStore
type CommitID = alms.CommitID
type Model = alms.Model

// Pair constructs a model from a key-value pair.
var Pair = alms.Pair
