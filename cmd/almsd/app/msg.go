package almsd

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/x/batch"
)

// Boiler-plate needed to bridge the ExecuteBatchMsg protobuf type into
// something usable by the batch extension

var _ batch.Msg = (*ExecuteBatchMsg)(nil)

func (*ExecuteBatchMsg) Path() string {
	return batch.PathExecuteBatchMsg
}

func (msg *ExecuteBatchMsg) Validate() error {
	return batch.Validate(msg)
}

func (msg *ExecuteBatchMsg) MsgList() ([]alms.Msg, error) {
	var err error
	messages := make([]alms.Msg, len(msg.Messages))
	for i, m := range msg.Messages {
		messages[i], err = alms.ExtractMsgFromSum(m.GetSum())
		if err != nil {
			return nil, err
		}
	}
	return messages, nil
}
