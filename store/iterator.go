package store

import (
	"bytes"
	"sync"

	"github.com/alms-io/alms/errors"
	"github.com/google/btree"
)

///////////////////////////////////////////////////////
// From btree items to Iterator

type btreeIter struct {
	data    btree.Item
	hasMore bool
	read    <-chan btree.Item
	stop    chan<- struct{}
	once    sync.Once
	// reverse is set when iterating in descending key order
	reverse bool
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Ascend(insert)
		} else if start == nil { // end != nil
			bt.AscendLessThan(bkey{end}, insert)
		} else if end == nil { // start != nil
			bt.AscendGreaterOrEqual(bkey{start}, insert)
		} else { // both != nil
			bt.AscendRange(bkey{start}, bkey{end}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read:    read,
		stop:    stop,
		reverse: true,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Descend(insert)
		} else if start == nil { // end != nil
			bt.DescendLessOrEqual(bkeyLess{end}, insert)
		} else if end == nil { // start != nil
			bt.DescendGreaterThan(bkeyLess{start}, insert)
		} else { // both != nil
			bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func (b *btreeIter) wrap(parent Iterator) *itemIter {
	return &itemIter{
		wrap:   b,
		parent: parent,
	}
}

func (b *btreeIter) next() {
	b.data, b.hasMore = <-b.read
}

func (b *btreeIter) close() {
	b.once.Do(func() {
		b.stop <- struct{}{}
		// Drain the source until the producing goroutine quits. This
		// guarantees that the btree is not read anymore once close
		// returns.
		for range b.read {
		}
		b.hasMore = false
	})
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.data.(keyer)
}

func (b *btreeIter) valid() bool {
	return b.hasMore
}

// itemIter combines an itemIter (from the btree overlay) with the iterator of
// the backing store. Overlay entries shadow the parent, deleted items hide
// them.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator

	// cache the upcoming parent entry to be able to compare the two
	// sources without advancing them
	parentKey   []byte
	parentValue []byte
	parentDone  bool
	initialized bool
}

var _ Iterator = (*itemIter)(nil)

// Next returns the next key/value pair in iteration order, or
// ErrIteratorDone when both sources are drained.
func (i *itemIter) Next() ([]byte, []byte, error) {
	if !i.initialized {
		i.initialized = true
		if err := i.advanceParent(); err != nil {
			return nil, nil, err
		}
	}

	for {
		src := i.firstKey()
		if src == none {
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "btree cache")
		}

		if src == parent {
			key, value := i.parentKey, i.parentValue
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			return key, value, nil
		}

		// The overlay shadows the parent. When both point at the same
		// key, both must advance.
		item := i.wrap.get()
		i.wrap.next()
		if src == both {
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
		}
		if set, ok := item.(setItem); ok {
			return set.Key(), set.value, nil
		}
		// The overlay deleted this key, skip it entirely.
	}
}

// Release frees both iteration sources. It is safe to call Release more
// than once.
func (i *itemIter) Release() {
	if i.parent != nil {
		i.parent.Release()
	}
	i.wrap.close()
}

// advanceParent loads the next parent entry into the local cache. When the
// parent is drained it is marked as done instead of returning an error.
func (i *itemIter) advanceParent() error {
	if i.parent == nil || i.parentDone {
		i.parentDone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentValue = key, value
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey, i.parentValue = nil, nil
	default:
		return err
	}
	return nil
}

// firstKey selects the source holding the lowest key (highest when iterating
// in reverse), if any
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if i.parentDone {
		if !i.wrap.valid() {
			return none
		}
		return us
	}
	if !i.wrap.valid() {
		return parent
	}

	// both are valid... compare keys....
	cmp := bytes.Compare(i.parentKey, i.wrap.get().Key())
	if i.wrap.reverse {
		cmp = -cmp
	}

	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}
