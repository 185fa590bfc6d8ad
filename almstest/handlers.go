package almstest

import "github.com/alms-io/alms"

// Handler implements alms.Handler and counts all calls. If a result or an
// error is configured it is returned by the corresponding method.
type Handler struct {
	checkCall   int
	CheckResult *alms.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult *alms.DeliverResult
	DeliverErr    error
}

var _ alms.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	h.checkCall++
	if h.CheckResult == nil && h.CheckErr == nil {
		return &alms.CheckResult{}, nil
	}
	return h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverResult == nil && h.DeliverErr == nil {
		return &alms.DeliverResult{}, nil
	}
	return h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
