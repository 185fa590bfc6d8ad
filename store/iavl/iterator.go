package iavl

import (
	"sync"

	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
)

// lazyIterator streams the entries of a tree iteration without materializing
// the whole result set. The producing side feeds it via add and must call
// finish once done.
type lazyIterator struct {
	read chan store.Model
	stop chan struct{}
	once sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		stop: make(chan struct{}),
	}
}

// add feeds the iterator with the next entry. It is given to the tree
// iterate call and returns true when the iteration must stop.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	m := store.Model{Key: key, Value: value}
	select {
	case i.read <- m:
		return false
	case <-i.stop:
		return true
	}
}

// finish marks the producing side as drained. It must be called exactly once,
// after the tree iteration returned.
func (i *lazyIterator) finish() {
	close(i.read)
}

// Next returns the next key/value pair, or ErrIteratorDone when the
// iteration source is drained or the iterator was released.
func (i *lazyIterator) Next() ([]byte, []byte, error) {
	data, hasMore := <-i.read
	if !hasMore {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "tree iterator")
	}
	return data.Key, data.Value, nil
}

// Release stops the producing side and waits until it quits. No tree reads
// happen after this call returns. It is safe to call Release multiple times.
func (i *lazyIterator) Release() {
	i.once.Do(func() {
		close(i.stop)
		for range i.read {
		}
	})
}
