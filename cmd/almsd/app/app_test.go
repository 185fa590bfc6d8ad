package almsd_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	almsd "github.com/alms-io/alms/cmd/almsd/app"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/x/fund"
	"github.com/alms-io/alms/x/registry"
	"github.com/alms-io/alms/x/reward"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	adminCond   = alms.NewCondition("preauth", "seed", []byte("app-admin"))
	donorCond   = alms.NewCondition("preauth", "seed", []byte("app-donor"))
	charityCond = alms.NewCondition("preauth", "seed", []byte("app-charity"))
)

func TestAppFullCycle(t *testing.T) {
	runner := newTestApp(t)

	now := time.Unix(1600000000, 0).UTC()
	charity := charityCond.Address()
	donor := donorCond.Address()

	// The first block opens the first cycle. A donation buys voting
	// power, part of it is spent on the charity, and the trusted source
	// attests the impact.
	runner.InBlockAt(now, func(app almstest.App) error {
		if err := app.DeliverTx(&almsd.Tx{
			PreauthConditions: [][]byte{donorCond},
			Sum: &almsd.Tx_ContributeMsg{&fund.ContributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(100, 0, "ALM"),
			}},
		}); err != nil {
			return err
		}
		if err := app.DeliverTx(&almsd.Tx{
			PreauthConditions: [][]byte{donorCond},
			Sum: &almsd.Tx_VoteMsg{&fund.VoteMsg{
				Metadata:    &alms.Metadata{Schema: 1},
				Beneficiary: charity,
				Power:       49,
			}},
		}); err != nil {
			return err
		}
		return app.DeliverTx(&almsd.Tx{
			PreauthConditions: [][]byte{adminCond},
			Sum: &almsd.Tx_SubmitImpactMsg{&fund.SubmitImpactMsg{
				Metadata:    &alms.Metadata{Schema: 1},
				CycleID:     1,
				Beneficiary: charity,
				Score:       100,
			}},
		})
	})

	var acct fund.DonorAccount
	queryInto(t, runner, fundDBKey("don", 1, donor), &acct)
	assert.Equal(t, int64(100), acct.Contributed)
	assert.Equal(t, int64(51), acct.Power)

	// contributing mints rewards at the configured 1/10 rate
	var rw reward.Reward
	queryInto(t, runner, append([]byte("rwd:"), donor...), &rw)
	assert.Equal(t, coin.NewCoinp(10, 0, "RWD"), rw.Balance)

	// past the deadline the ticker closes the cycle, then anyone can
	// crank the distribution
	runner.InBlockAt(now.Add(2*time.Hour), func(app almstest.App) error {
		return app.DeliverTx(&almsd.Tx{
			PreauthConditions: [][]byte{donorCond},
			Sum: &almsd.Tx_DistributeMsg{&fund.DistributeMsg{
				Metadata: &alms.Metadata{Schema: 1},
				CycleID:  1,
			}},
		})
	})

	// the charity holds the full tally and the full score, so both
	// shares pay out to it without a remainder
	var payout fund.Payout
	queryInto(t, runner, fundDBKey("pay", 1, charity), &payout)
	assert.Equal(t, coin.NewCoinp(100, 0, "ALM"), payout.Amount)

	var next fund.Cycle
	queryInto(t, runner, fundDBKey("cyc", 2, nil), &next)
	assert.Equal(t, fund.PhaseOpen, next.Phase)
	assert.Equal(t, int64(0), next.TotalPool)
}

func TestAppBatchRegistersAndVerifies(t *testing.T) {
	runner := newTestApp(t)

	newOrgCond := alms.NewCondition("preauth", "seed", []byte("app-kitchen"))
	newOrg := newOrgCond.Address()
	now := time.Unix(1600000000, 0).UTC()

	// registration and admin verification in a single atomic batch
	runner.InBlockAt(now, func(app almstest.App) error {
		return app.DeliverTx(&almsd.Tx{
			PreauthConditions: [][]byte{newOrgCond, adminCond},
			Sum: &almsd.Tx_ExecuteBatchMsg{&almsd.ExecuteBatchMsg{
				Messages: []almsd.ExecuteBatchMsg_Union{
					{Sum: &almsd.ExecuteBatchMsg_Union_RegisterBeneficiaryMsg{&registry.RegisterBeneficiaryMsg{
						Metadata: &alms.Metadata{Schema: 1},
						Address:  newOrg,
						Name:     "soup-kitchen",
					}}},
					{Sum: &almsd.ExecuteBatchMsg_Union_VerifyBeneficiaryMsg{&registry.VerifyBeneficiaryMsg{
						Metadata:      &alms.Metadata{Schema: 1},
						BeneficiaryID: almstest.SequenceID(2),
					}}},
				},
			}},
		})
	})

	var bnf registry.Beneficiary
	queryInto(t, runner, append([]byte("bnf:"), almstest.SequenceID(2)...), &bnf)
	assert.Equal(t, "soup-kitchen", bnf.Name)
	assert.Equal(t, true, bnf.Verified)
}

func newTestApp(t *testing.T) *almstest.Runner {
	t.Helper()

	application, err := almsd.GenerateApp("", log.NewNopLogger(), true)
	assert.Nil(t, err)

	admin := adminCond.Address()
	type dict map[string]interface{}
	genesis := dict{
		"conf": dict{
			"migration": dict{"admin": admin},
			"fund": dict{
				"owner":          admin,
				"trusted_source": admin,
				"ticker":         "ALM",
				"cycle_duration": "1h",
				"issuance":       "1/1",
				"vote_weight":    "7/10",
				"impact_weight":  "3/10",
			},
			"registry": dict{"admin": admin},
			"reward": dict{
				"admin":  admin,
				"ticker": "RWD",
				"rate":   "1/10",
			},
		},
		"initialize_schema": []string{"fund", "registry", "reward"},
		"registry": dict{
			"beneficiaries": []dict{
				{
					"address":  charityCond.Address(),
					"name":     "clean-water-initiative",
					"verified": true,
				},
			},
		},
	}

	runner := almstest.NewRunner(t, application, "test-alms-chain")
	runner.InitChain(genesis)
	return runner
}

// fundDBKey builds the raw database key of a fund entity: the bucket short
// name, the 8 byte big endian cycle id and an optional address.
func fundDBKey(bucket string, cycleID uint64, addr alms.Address) []byte {
	key := make([]byte, 0, len(bucket)+1+8+len(addr))
	key = append(key, bucket...)
	key = append(key, ':')
	key = appendUint64(key, cycleID)
	return append(key, addr...)
}

func appendUint64(b []byte, v uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, v)
	return append(b, raw...)
}

func queryInto(t *testing.T, runner *almstest.Runner, key []byte, dest interface{ Unmarshal([]byte) error }) {
	t.Helper()
	raw, err := runner.Get(key)
	assert.Nil(t, err)
	if raw == nil {
		t.Fatalf("no value for key %q", key)
	}
	assert.Nil(t, dest.Unmarshal(raw))
}
