package alms

// ReadOnlyKVStore is a simple interface to read data from the ledger.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// Iterator must be released when done.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive. Start must be less than end, or the Iterator is invalid.
	// Iterator must be released when done.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing. Both KVStore and Batch
// satisfy it.
type SetDeleter interface {
	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this interface.
// They *may* implement other methods as well, but at least these are
// required.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Batch groups writes to apply them atomically in one call.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator allows iteration over a domain of keys. These may all be
// preloaded, or loaded on demand.
//
//   it, err := store.Iterator(start, end)
//   if err != nil { ... }
//   defer it.Release()
//
//   for {
//       key, value, err := it.Next()
//       if errors.ErrIteratorDone.Is(err) {
//           break
//       } else if err != nil {
//           ...
//       }
//       ...
//   }
type Iterator interface {
	// Next returns the next key/value pair, or errors.ErrIteratorDone when
	// the whole domain was returned.
	// CONTRACT: key, value readonly []byte
	Next() (key, value []byte, err error)

	// Release frees all resources held by the iterator. Release can be
	// called multiple times.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrapping.
//
// CacheWrap() should not return a Committer, since Commit() on cache-wraps
// makes no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch-pad of uncommitted writes on top of another
// store. All reads see the overlay. At the end, call Write to flush the
// writes to the parent, or Discard to drop them.
//
// This is the savepoint/rollback primitive the transaction boundary is
// built on.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}

// CommitKVStore is a store that can persist a state root per version, load
// the last committed version on start up, and hand out cache wraps to
// operate on the tip.
type CommitKVStore interface {
	// Get returns the value at the last committed state.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a scratch-pad over the latest state.
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and return its identity.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version. If there was
	// a crash during the last commit, it is guaranteed to return a stable
	// state, even if older.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk.
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
