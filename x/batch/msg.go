package batch

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// MaxBatchMessages defines the maximum number of messages allowed within a
// single batch transaction.
const MaxBatchMessages = 10

// PathExecuteBatchMsg is the routing path registered by applications for
// their batch message implementation.
const PathExecuteBatchMsg = "batch/execute_batch"

// Msg defines the interface of a batch message. Any message that can
// enumerate a list of inner messages can be executed as a batch.
type Msg interface {
	alms.Msg
	MsgList() ([]alms.Msg, error)
}

// Validate rejects batches that exceed the message limit.
func Validate(msg Msg) error {
	l, err := msg.MsgList()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve batch message list")
	}
	if len(l) > MaxBatchMessages {
		return errors.Wrapf(errors.ErrMsg, "batch too large, the maximum number of messages is %d", MaxBatchMessages)
	}
	return nil
}
