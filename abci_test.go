package alms_test

import (
	"fmt"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateErrorResult(t *testing.T) {
	cases := []struct {
		err  error
		log  string
		code uint32
	}{
		{fmt.Errorf("base"), "internal error", 1},
		{errors.Wrap(fmt.Errorf("dave"), "wrapped"), "internal error", 1},
		{errors.ErrUnauthorized, "unauthorized", errors.ErrUnauthorized.ABCICode()},
		{errors.Wrap(errors.ErrNotFound, "no cycle"), "no cycle: not found", errors.ErrNotFound.ABCICode()},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			dres := alms.DeliverTxError(tc.err, false)
			assert.True(t, dres.IsErr())
			assert.Equal(t, tc.log, dres.Log)
			assert.Equal(t, tc.code, dres.Code)

			cres := alms.CheckTxError(tc.err, false)
			assert.True(t, cres.IsErr())
			assert.Equal(t, tc.log, cres.Log)
			assert.Equal(t, tc.code, cres.Code)
		})
	}
}

func TestCreateResults(t *testing.T) {
	d, msg := []byte{1, 3, 4}, "got it"
	dres := alms.DeliverResult{Data: d, Log: msg}
	ad := dres.ToABCI()
	assert.EqualValues(t, d, ad.Data)
	assert.Equal(t, msg, ad.Log)
	assert.Empty(t, ad.Tags)

	c, gas := "aok", int64(12345)
	cres := alms.NewCheck(gas, c)
	ac := cres.ToABCI()
	assert.Equal(t, c, ac.Log)
	assert.Equal(t, gas, ac.GasWanted)
	assert.Empty(t, ac.Data)
}
