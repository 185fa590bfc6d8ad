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

func TestCycleValidate(t *testing.T) {
	now := alms.AsUnixTime(time.Now())

	cases := map[string]struct {
		model   Cycle
		field   string
		wantErr *errors.Error
	}{
		"valid open cycle": {
			model: Cycle{
				Metadata: &alms.Metadata{Schema: 1},
				Phase:    PhaseOpen,
				OpenedAt: now,
				ClosesAt: now.Add(time.Hour),
			},
		},
		"valid distributed cycle": {
			model: Cycle{
				Metadata:   &alms.Metadata{Schema: 1},
				Phase:      PhaseDistributed,
				OpenedAt:   now,
				ClosesAt:   now.Add(time.Hour),
				ClosedAt:   now.Add(time.Hour),
				TotalPool:  500,
				TotalTally: 30,
				TotalScore: 100,
			},
		},
		"invalid phase": {
			model: Cycle{
				Metadata: &alms.Metadata{Schema: 1},
				Phase:    PhaseInvalid,
				OpenedAt: now,
				ClosesAt: now.Add(time.Hour),
			},
			field:   "Phase",
			wantErr: errors.ErrState,
		},
		"negative pool": {
			model: Cycle{
				Metadata:  &alms.Metadata{Schema: 1},
				Phase:     PhaseOpen,
				OpenedAt:  now,
				ClosesAt:  now.Add(time.Hour),
				TotalPool: -1,
			},
			field:   "TotalPool",
			wantErr: errors.ErrAmount,
		},
		"missing metadata": {
			model: Cycle{
				Phase:    PhaseOpen,
				OpenedAt: now,
				ClosesAt: now.Add(time.Hour),
			},
			field:   "Metadata",
			wantErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.FieldError(t, err, tc.field, tc.wantErr)
			}
		})
	}
}

func TestVoteEntryValidate(t *testing.T) {
	entry := &VoteEntry{}
	err := entry.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Donor", errors.ErrEmpty)
	assert.FieldError(t, err, "Beneficiary", errors.ErrEmpty)
	assert.FieldError(t, err, "Power", errors.ErrAmount)

	entry = &VoteEntry{
		Metadata:    &alms.Metadata{Schema: 1},
		Donor:       almstest.NewCondition().Address(),
		Beneficiary: almstest.NewCondition().Address(),
		Power:       50,
	}
	assert.Nil(t, entry.Validate())
}

func TestPayoutValidate(t *testing.T) {
	payout := &Payout{
		Metadata:    &alms.Metadata{Schema: 1},
		Beneficiary: almstest.NewCondition().Address(),
		Amount:      coin.NewCoinp(0, 0, "ALM"),
	}
	// Zero payouts are never stored, only positive amounts are valid.
	assert.FieldError(t, payout.Validate(), "Amount", errors.ErrAmount)

	payout.Amount = coin.NewCoinp(350, 0, "ALM")
	assert.Nil(t, payout.Validate())
}

func TestConfigurationValidate(t *testing.T) {
	conf := Configuration{}
	err := conf.Validate()
	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Owner", errors.ErrEmpty)
	assert.FieldError(t, err, "TrustedSource", errors.ErrEmpty)
	assert.FieldError(t, err, "Ticker", errors.ErrCurrency)
	assert.FieldError(t, err, "CycleDuration", errors.ErrInput)
	assert.FieldError(t, err, "Issuance", errors.ErrEmpty)

	conf = testConfiguration(
		almstest.NewCondition().Address(),
		almstest.NewCondition().Address(),
	)
	assert.Nil(t, conf.Validate())

	// Weights that do not make up a whole are rejected.
	conf.VoteWeight = &alms.Fraction{Numerator: 1, Denominator: 2}
	conf.ImpactWeight = &alms.Fraction{Numerator: 1, Denominator: 3}
	assert.FieldError(t, conf.Validate(), "VoteWeight", errors.ErrInput)
}
