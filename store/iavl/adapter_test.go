package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/store"
)

type Model = store.Model
type Op = store.Op

// makeBase returns the base layer
//
// If you want to test a different kvstore implementation
// you can copy most of these tests and change makeBase.
// Once that passes, customize and extend as you wish
func makeBase() (store.CacheableKVStore, func()) {
	commit, cleanup := makeCommitStore()
	return commit.Adapter(), cleanup
}

func makeCommitStore() (CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }
	return NewCommitStore(tmpDir, "base"), cleanup
}

func adapterSuite() *store.TestSuite {
	return store.NewTestSuite(makeBase)
}

// TestCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func TestCacheGetSet(t *testing.T) {
	adapterSuite().GetSet(t)
}

// TestCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestCacheConflicts(t *testing.T) {
	adapterSuite().CacheConflicts(t)
}

// TestFuzzCacheIterator makes sure the basic iterator
// works. Includes random deletes, but not nested iterators.
func TestFuzzCacheIterator(t *testing.T) {
	adapterSuite().FuzzIterator(t)
}

// TestConflictCacheIterator covers some specific test cases
// that arose during fuzzing the iterators.
func TestConflictCacheIterator(t *testing.T) {
	adapterSuite().IteratorWithConflicts(t)
}

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next block
func TestCommitOverwrite(t *testing.T) {
	k1, v1 := []byte("balance"), []byte("100")
	k2, v2 := []byte("score"), []byte("30")
	v11 := []byte("250")

	commit, cleanup := makeCommitStore()
	defer cleanup()
	// only one history version to trigger pruning
	commit.numHistory = 1

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)
	if len(id.Hash) != 0 {
		t.Fatal("hash of an empty store must be empty")
	}

	parent := commit.CacheWrap()
	assert.Nil(t, parent.Set(k1, v1))
	assert.Nil(t, parent.Set(k2, v2))
	// write data to backing store
	assert.Nil(t, parent.Write())
	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("hash of a non-empty store must not be empty")
	}

	// child also comes from commit
	child := commit.CacheWrap()
	assert.Nil(t, child.Set(k1, v11))
	assert.Nil(t, child.Delete(k2))

	// and a side-cache wrap to see they are in parallel
	side := commit.CacheWrap()

	// the side cache sees unmodified state
	assertGetHas(t, side, k1, v1, true)
	assertGetHas(t, side, k2, v2, true)

	// the child shows the changes
	assertGetHas(t, child, k1, v11, true)
	assertGetHas(t, child, k2, nil, false)

	// write child to parent and make sure the side cache sees it too
	assert.Nil(t, child.Write())
	assertGetHas(t, side, k1, v11, true)
	assertGetHas(t, side, k2, nil, false)

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), id.Version)
}

// TestVersionedCommits makes sure every commit creates a new version and
// that pruning old versions keeps the latest state readable.
func TestVersionedCommits(t *testing.T) {
	commit := MockCommitStore()
	commit.numHistory = 1

	for i := 1; i <= 5; i++ {
		cache := commit.CacheWrap()
		assert.Nil(t, cache.Set([]byte("count"), []byte{byte(i)}))
		assert.Nil(t, cache.Write())
		id, err := commit.Commit()
		assert.Nil(t, err)
		assert.Equal(t, int64(i), id.Version)
	}

	assertGetHas(t, commit, []byte("count"), []byte{5}, true)
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}
