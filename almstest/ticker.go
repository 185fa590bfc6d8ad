package almstest

import "github.com/alms-io/alms"

// Ticker is a mock implementation of the alms.Ticker interface. Every call
// is counted and the configured result returned.
type Ticker struct {
	tickCall int
	Result   alms.TickResult
}

var _ alms.Ticker = (*Ticker)(nil)

func (t *Ticker) Tick(ctx alms.Context, store alms.CacheableKVStore) alms.TickResult {
	t.tickCall++
	return t.Result
}

func (t *Ticker) TickCallCount() int {
	return t.tickCall
}
