package iavl

import (
	"testing"
)

func TestRelease(t *testing.T) {
	// Releasing an iterator must stop the producing side, even when it is
	// mid iteration, without ever writing to a closed channel.

	it := newLazyIterator()

	done := make(chan struct{})
	go func() {
		// Ensure the iteration takes enough time to be active while
		// Release is called.
		for i := 0; i < 10000; i++ {
			it.add(nil, nil)
		}
		it.finish()
		close(done)
	}()
	it.Release()
	<-done
}

func TestReleaseDrainedIterator(t *testing.T) {
	it := newLazyIterator()
	it.finish()
	it.Release()
	it.Release()
}
