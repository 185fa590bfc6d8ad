package batch_test

import (
	"errors"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/x/batch"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMsg(t *testing.T) {
	Convey("Test Validate", t, func() {
		msg := &mockMsg{}

		Convey("Test happy flow", func() {
			msg.On("MsgList").Return(make([]alms.Msg, batch.MaxBatchMessages), nil)
			So(batch.Validate(msg), ShouldBeNil)
		})

		Convey("Test list too long", func() {
			msg.On("MsgList").Return(make([]alms.Msg, batch.MaxBatchMessages+1), nil)
			So(batch.Validate(msg), ShouldNotBeNil)
		})

		Convey("Test error", func() {
			msg.On("MsgList").Return(make([]alms.Msg, batch.MaxBatchMessages), errors.New("whatever"))
			So(batch.Validate(msg), ShouldNotBeNil)
		})
	})
}
