package iavl

import (
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// cacheSize is the number of tree nodes held in memory by the
	// underlying tree implementation.
	cacheSize = 10000

	// defaultHistory is how many old versions we hold on disk before
	// pruning. One is the bare minimum to survive a crash during commit.
	defaultHistory = 20
)

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree       *iavl.MutableTree
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing. The data is persisted
// in a leveldb instance named after the given name, inside the given
// directory.
func NewCommitStore(dir, name string) CommitStore {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		panic(err)
	}
	return CommitStore{
		tree:       iavl.NewMutableTree(db, cacheSize),
		numHistory: defaultHistory,
	}
}

// NewCommitStoreFromTree wraps an already loaded tree. It is used by
// debugging tools that prepare the tree state themselves.
func NewCommitStoreFromTree(tree *iavl.MutableTree) CommitStore {
	return CommitStore{
		tree:       tree,
		numHistory: defaultHistory,
	}
}

// MockCommitStore returns a store without disk backing, useful for tests.
func MockCommitStore() CommitStore {
	return CommitStore{
		tree:       iavl.NewMutableTree(dbm.NewMemDB(), cacheSize),
		numHistory: defaultHistory,
	}
}

// Adapter returns the working tree as a cache-wrappable store.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: s}
}

// Get reads the working tree. As writes are applied to the tree only when a
// cache wrap is written, between the commits this is the last committed
// state.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.Get(key)
	return value, nil
}

// Has checks the working tree for the key presence.
func (s CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// Set updates the working tree. This change is not persisted until Commit is
// called.
func (s CommitStore) Set(key, value []byte) error {
	s.tree.Set(key, value)
	return nil
}

// Delete removes the key from the working tree. This change is not persisted
// until Commit is called.
func (s CommitStore) Delete(key []byte) error {
	s.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (s CommitStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(s)
}

// CacheWrap gives us a savepoint to perform transactions on
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, s.NewBatch(), nil)
}

// Commit persists the next tree version to disk, and returns its identity.
// Versions that fall out of the history window are released.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(err, "cannot save version")
	}

	if old := version - s.numHistory; s.numHistory > 0 && old > 0 && s.tree.VersionExists(old) {
		if err := s.tree.DeleteVersion(old); err != nil {
			return store.CommitID{}, errors.Wrapf(err, "cannot prune version %d", old)
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s CommitStore) Iterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		s.tree.IterateRange(start, end, true, iter.add)
		iter.finish()
	}()
	return iter, nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (s CommitStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		s.tree.IterateRange(start, end, false, iter.add)
		iter.finish()
	}()
	return iter, nil
}
