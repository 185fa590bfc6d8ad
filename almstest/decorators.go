package almstest

import "github.com/alms-io/alms"

// Decorator is a mock implementation of the alms.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ alms.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx, next alms.Checker) (*alms.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &alms.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx, next alms.Deliverer) (*alms.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &alms.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate combines a handler with a single decorator and returns the result
// as a plain handler.
func Decorate(h alms.Handler, d alms.Decorator) alms.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn alms.Handler
	dc alms.Decorator
}

var _ alms.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
