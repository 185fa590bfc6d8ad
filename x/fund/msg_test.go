package fund

import (
	"testing"
	"time"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
)

func TestContributeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     ContributeMsg
		field   string
		wantErr *errors.Error
	}{
		"valid message": {
			msg: ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(100, 0, "ALM"),
			},
		},
		"missing amount": {
			msg: ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
			},
			field:   "Amount",
			wantErr: ErrInvalidAmount,
		},
		"zero amount": {
			msg: ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(0, 0, "ALM"),
			},
			field:   "Amount",
			wantErr: ErrInvalidAmount,
		},
		"negative amount": {
			msg: ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(-5, 0, "ALM"),
			},
			field:   "Amount",
			wantErr: ErrInvalidAmount,
		},
		"fractional amount": {
			msg: ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(1, 500000000, "ALM"),
			},
			field:   "Amount",
			wantErr: ErrInvalidAmount,
		},
		"missing metadata": {
			msg: ContributeMsg{
				Amount: coin.NewCoinp(100, 0, "ALM"),
			},
			field:   "Metadata",
			wantErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.FieldError(t, err, tc.field, tc.wantErr)
			}
		})
	}
}

func TestVoteMsgValidate(t *testing.T) {
	msg := &VoteMsg{}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Beneficiary", errors.ErrEmpty)
	assert.FieldError(t, err, "Power", ErrInvalidAmount)

	msg = &VoteMsg{
		Metadata:    &alms.Metadata{Schema: 1},
		Beneficiary: almstest.NewCondition().Address(),
		Power:       25,
	}
	assert.Nil(t, msg.Validate())
}

func TestSubmitImpactMsgValidate(t *testing.T) {
	msg := &SubmitImpactMsg{
		Score: -1,
	}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "CycleID", errors.ErrEmpty)
	assert.FieldError(t, err, "Beneficiary", errors.ErrEmpty)
	assert.FieldError(t, err, "Score", ErrInvalidAmount)

	msg = &SubmitImpactMsg{
		Metadata:    &alms.Metadata{Schema: 1},
		CycleID:     1,
		Beneficiary: almstest.NewCondition().Address(),
		// A zero score is a valid attestation.
		Score: 0,
	}
	assert.Nil(t, msg.Validate())
}

func TestCloseCycleMsgValidate(t *testing.T) {
	msg := &CloseCycleMsg{}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "CycleID", errors.ErrEmpty)

	msg = &CloseCycleMsg{
		Metadata: &alms.Metadata{Schema: 1},
		CycleID:  1,
	}
	assert.Nil(t, msg.Validate())
}

func TestDistributeMsgValidate(t *testing.T) {
	msg := &DistributeMsg{}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "CycleID", errors.ErrEmpty)

	msg = &DistributeMsg{
		Metadata: &alms.Metadata{Schema: 1},
		CycleID:  1,
	}
	assert.Nil(t, msg.Validate())
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	msg := &UpdateConfigurationMsg{}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Patch", errors.ErrEmpty)

	msg = &UpdateConfigurationMsg{
		Metadata: &alms.Metadata{Schema: 1},
		Patch: &Configuration{
			Metadata:      &alms.Metadata{Schema: 1},
			CycleDuration: alms.AsUnixDuration(time.Hour),
		},
	}
	assert.Nil(t, msg.Validate())
}
