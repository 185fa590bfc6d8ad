package batch

import (
	"strings"

	"github.com/alms-io/alms"
	"github.com/tendermint/tendermint/libs/common"
)

// Decorator iterates through batch transaction messages and passes them
// down the stack one at a time, combining the partial results into one.
type Decorator struct{}

var _ alms.Decorator = Decorator{}

// NewDecorator returns a batch transaction decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

// BatchTx hides the batch message from the downstream handlers and presents
// a single inner message in its place.
type BatchTx struct {
	alms.Tx
	Msg alms.Msg
}

var _ alms.Tx = (*BatchTx)(nil)

// GetMsg returns the wrapped inner message.
func (tx *BatchTx) GetMsg() (alms.Msg, error) {
	return tx.Msg, nil
}

// Check executes each message of a batch transaction separately and merges
// the results. Transactions carrying any other message are passed through.
func (d Decorator) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Checker) (*alms.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, err
	}

	checks := make([]*alms.CheckResult, len(msgList))
	for i, m := range msgList {
		checks[i], err = next.Check(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return d.combineChecks(checks)
}

// Deliver executes each message of a batch transaction separately and
// merges the results. Transactions carrying any other message are passed
// through.
func (d Decorator) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Deliverer) (*alms.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, err
	}

	delivers := make([]*alms.DeliverResult, len(msgList))
	for i, m := range msgList {
		delivers[i], err = next.Deliver(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return d.combineDelivers(delivers)
}

// combineChecks sums up the gas of all sub-results, joins the logs and
// collects the data payloads into a marshalled ByteArrayList, keeping the
// message order.
func (Decorator) combineChecks(checks []*alms.CheckResult) (*alms.CheckResult, error) {
	datas := make([][]byte, len(checks))
	logs := make([]string, len(checks))
	var allocated, payment int64
	for i, r := range checks {
		datas[i] = r.Data
		logs[i] = r.Log
		allocated += r.GasAllocated
		payment += r.GasPayment
	}

	data, err := (&ByteArrayList{Elements: datas}).Marshal()
	if err != nil {
		return nil, err
	}

	return &alms.CheckResult{
		Data:         data,
		Log:          strings.Join(logs, "\n"),
		GasAllocated: allocated,
		GasPayment:   payment,
	}, nil
}

// combineDelivers merges the sub-results the same way combineChecks does,
// concatenating the tags and validator diffs in message order.
func (Decorator) combineDelivers(delivers []*alms.DeliverResult) (*alms.DeliverResult, error) {
	datas := make([][]byte, len(delivers))
	logs := make([]string, len(delivers))
	var gasUsed int64
	var diff []alms.ValidatorUpdate
	var tags []common.KVPair
	for i, r := range delivers {
		datas[i] = r.Data
		logs[i] = r.Log
		gasUsed += r.GasUsed
		diff = append(diff, r.Diff...)
		tags = append(tags, r.Tags...)
	}

	data, err := (&ByteArrayList{Elements: datas}).Marshal()
	if err != nil {
		return nil, err
	}

	return &alms.DeliverResult{
		Data:    data,
		Log:     strings.Join(logs, "\n"),
		GasUsed: gasUsed,
		Diff:    diff,
		Tags:    tags,
	}, nil
}
