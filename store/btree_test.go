package store

import (
	"testing"
)

func btreeSuite() *TestSuite {
	return NewTestSuite(func() (CacheableKVStore, func()) {
		return MemStore(), func() {}
	})
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	btreeSuite().GetSet(t)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	btreeSuite().CacheConflicts(t)
}

// TestBTreeFuzzIterator makes sure the basic iterator
// works. Includes random deletes, but not nested iterators.
func TestBTreeFuzzIterator(t *testing.T) {
	btreeSuite().FuzzIterator(t)
}

// TestBTreeIteratorWithConflicts covers some specific test cases
// that arose during fuzzing the iterators.
func TestBTreeIteratorWithConflicts(t *testing.T) {
	btreeSuite().IteratorWithConflicts(t)
}
