package store

import (
	"testing"

	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/errors"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	// make sure proper iteration works
	iter := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		key, value, err := iter.Next()
		assert.Nil(t, err)
		assert.Equal(t, ks[i], key)
		assert.Equal(t, vs[i], value)
	}
	if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("expected iterator to be exhausted, got %+v", err)
	}

	it := NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatal("calling Next on a released iterator must return the done error")
	}
}

func TestNonAtomicBatchWrite(t *testing.T) {
	kv := MemStore()

	batch := NewNonAtomicBatch(kv)
	assert.Nil(t, batch.Set([]byte("a"), []byte("1")))
	assert.Nil(t, batch.Set([]byte("b"), []byte("2")))
	assert.Nil(t, batch.Delete([]byte("a")))

	// until written, the store must not be modified
	if has, err := kv.Has([]byte("b")); err != nil || has {
		t.Fatalf("want no data before the batch is written: %v %v", has, err)
	}

	assert.Nil(t, batch.Write())

	if has, err := kv.Has([]byte("a")); err != nil || has {
		t.Fatalf("deleted key must not be present: %v %v", has, err)
	}
	v, err := kv.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), v)

	// a batch resets after writing
	if ops := batch.ShowOps(); len(ops) != 0 {
		t.Fatalf("batch must reset after write, got %d ops", len(ops))
	}
}
