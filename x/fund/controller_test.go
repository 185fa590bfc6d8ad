package fund

import (
	"testing"
	"time"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/store"
)

func TestIsqrt(t *testing.T) {
	cases := map[int64]int64{
		-5:                  0,
		0:                   0,
		1:                   1,
		2:                   1,
		3:                   1,
		4:                   2,
		99:                  9,
		100:                 10,
		101:                 10,
		400:                 20,
		9223372036854775807: 3037000499,
	}
	for n, want := range cases {
		if got := isqrt(n); got != want {
			t.Errorf("isqrt(%d): want %d, got %d", n, want, got)
		}
	}
}

func testConfiguration(owner, source alms.Address) Configuration {
	return Configuration{
		Metadata:      &alms.Metadata{Schema: 1},
		Owner:         owner,
		TrustedSource: source,
		Ticker:        "ALM",
		CycleDuration: alms.AsUnixDuration(time.Hour),
		Issuance:      &alms.Fraction{Numerator: 1, Denominator: 1},
		VoteWeight:    &alms.Fraction{Numerator: 7, Denominator: 10},
		ImpactWeight:  &alms.Fraction{Numerator: 3, Denominator: 10},
	}
}

func TestQuadraticVoteCost(t *testing.T) {
	// Spending power in a single vote or split over several votes on the
	// same beneficiary must produce the same tally. The tally is the
	// integer square root of the cumulative spend.
	var (
		now         = alms.AsUnixTime(time.Now())
		beneficiary = almstest.NewCondition().Address()
		conf        = testConfiguration(nil, nil)
	)

	cases := map[string]struct {
		Votes     []int64
		WantTally int64
	}{
		"all at once":           {Votes: []int64{100}, WantTally: 10},
		"split into three":      {Votes: []int64{25, 25, 50}, WantTally: 10},
		"one power one tally":   {Votes: []int64{1}, WantTally: 1},
		"below the next square": {Votes: []int64{99}, WantTally: 9},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "fund")

			ctrl := NewController()

			if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
				t.Fatalf("cannot open cycle: %s", err)
			}
			donor := almstest.NewCondition().Address()
			if _, err := ctrl.Contribute(db, donor, 100, conf); err != nil {
				t.Fatalf("cannot contribute: %s", err)
			}
			for i, power := range tc.Votes {
				if _, err := ctrl.Vote(db, donor, beneficiary, power); err != nil {
					t.Fatalf("vote %d: %s", i, err)
				}
			}

			var tally Tally
			if err := NewTallyBucket().One(db, beneficiaryKey(1, beneficiary), &tally); err != nil {
				t.Fatalf("cannot get tally: %s", err)
			}
			if tally.Total != tc.WantTally {
				t.Fatalf("want tally %d, got %d", tc.WantTally, tally.Total)
			}
			_, cycle, err := ctrl.CurrentCycle(db)
			if err != nil {
				t.Fatalf("cannot get cycle: %s", err)
			}
			if cycle.TotalTally != tc.WantTally {
				t.Fatalf("want aggregate tally %d, got %d", tc.WantTally, cycle.TotalTally)
			}
		})
	}
}

func TestVotePowerIsConserved(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	var (
		now  = alms.AsUnixTime(time.Now())
		conf = testConfiguration(nil, nil)
		ctrl = NewController()

		donor = almstest.NewCondition().Address()
		x     = almstest.NewCondition().Address()
		y     = almstest.NewCondition().Address()
	)

	if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
		t.Fatalf("cannot open cycle: %s", err)
	}
	if _, err := ctrl.Contribute(db, donor, 100, conf); err != nil {
		t.Fatalf("cannot contribute: %s", err)
	}
	if _, err := ctrl.Vote(db, donor, x, 60); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	if _, err := ctrl.Vote(db, donor, y, 40); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	// The full budget is spent, one more unit must be rejected.
	if _, err := ctrl.Vote(db, donor, x, 1); !ErrInsufficientPower.Is(err) {
		t.Fatalf("want ErrInsufficientPower, got %+v", err)
	}

	var acct DonorAccount
	if err := NewDonorBucket().One(db, donorKey(1, donor), &acct); err != nil {
		t.Fatalf("cannot get donor account: %s", err)
	}
	if acct.Power != 0 {
		t.Fatalf("want no power left, got %d", acct.Power)
	}
	if acct.Contributed != 100 {
		t.Fatalf("want contribution total 100, got %d", acct.Contributed)
	}
}

func TestDistribute(t *testing.T) {
	// Two donors, two beneficiaries. X collects all votes, Y all impact.
	// With a 7/10 vote weight and a 3/10 impact weight a 500 unit pool
	// splits into 350 and 150 with no remainder.
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	var (
		now    = alms.AsUnixTime(time.Now())
		source = almstest.NewCondition().Address()
		conf   = testConfiguration(nil, source)
		ctrl   = NewController()

		donorA = almstest.NewCondition().Address()
		donorB = almstest.NewCondition().Address()
		x      = almstest.NewCondition().Address()
		y      = almstest.NewCondition().Address()
	)

	if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
		t.Fatalf("cannot open cycle: %s", err)
	}
	if _, err := ctrl.Contribute(db, donorA, 100, conf); err != nil {
		t.Fatalf("cannot contribute: %s", err)
	}
	if _, err := ctrl.Contribute(db, donorB, 400, conf); err != nil {
		t.Fatalf("cannot contribute: %s", err)
	}
	if _, err := ctrl.Vote(db, donorA, x, 100); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	if _, err := ctrl.Vote(db, donorB, x, 400); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	if err := ctrl.SubmitImpact(db, 1, y, 100, source); err != nil {
		t.Fatalf("cannot submit impact: %s", err)
	}

	// Distribution requires a closed cycle.
	if _, err := ctrl.Distribute(db, 1, now, conf); !ErrNotClosed.Is(err) {
		t.Fatalf("want ErrNotClosed, got %+v", err)
	}
	if _, _, err := ctrl.CloseCycle(db, 1, now); err != nil {
		t.Fatalf("cannot close cycle: %s", err)
	}
	remainder, err := ctrl.Distribute(db, 1, now, conf)
	if err != nil {
		t.Fatalf("cannot distribute: %s", err)
	}
	if remainder != 0 {
		t.Fatalf("want no remainder, got %d", remainder)
	}

	assertPayout(t, ctrl, db, 1, x, 350)
	assertPayout(t, ctrl, db, 1, y, 150)

	cycle, err := ctrl.CycleByID(db, 1)
	if err != nil {
		t.Fatalf("cannot get cycle: %s", err)
	}
	if cycle.Phase != PhaseDistributed {
		t.Fatalf("want distributed phase, got %s", cycle.Phase)
	}

	// A repeated distribution must fail and leave the ledger untouched.
	if _, err := ctrl.Distribute(db, 1, now, conf); !ErrAlreadyDistributed.Is(err) {
		t.Fatalf("want ErrAlreadyDistributed, got %+v", err)
	}
	assertPayout(t, ctrl, db, 1, x, 350)
	assertPayout(t, ctrl, db, 1, y, 150)

	// The distribution opened the next cycle so the fund keeps running.
	cycleID, next, err := ctrl.CurrentCycle(db)
	if err != nil {
		t.Fatalf("cannot get current cycle: %s", err)
	}
	if cycleID != 2 {
		t.Fatalf("want cycle 2, got %d", cycleID)
	}
	if next.Phase != PhaseOpen {
		t.Fatalf("want open phase, got %s", next.Phase)
	}
	if next.TotalPool != 0 {
		t.Fatalf("want an empty pool, got %d", next.TotalPool)
	}
}

func TestDistributeCarriesRemainder(t *testing.T) {
	// No impact scores were submitted, so only the 7/10 vote portion of a
	// 100 unit pool is distributable. Two equal tallies receive 35 each
	// and the remaining 30 units seed the next cycle.
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	var (
		now  = alms.AsUnixTime(time.Now())
		conf = testConfiguration(nil, nil)
		ctrl = NewController()

		donor = almstest.NewCondition().Address()
		x     = almstest.NewCondition().Address()
		y     = almstest.NewCondition().Address()
	)

	if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
		t.Fatalf("cannot open cycle: %s", err)
	}
	if _, err := ctrl.Contribute(db, donor, 100, conf); err != nil {
		t.Fatalf("cannot contribute: %s", err)
	}
	if _, err := ctrl.Vote(db, donor, x, 49); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	if _, err := ctrl.Vote(db, donor, y, 49); err != nil {
		t.Fatalf("cannot vote: %s", err)
	}
	if _, _, err := ctrl.CloseCycle(db, 1, now); err != nil {
		t.Fatalf("cannot close cycle: %s", err)
	}

	remainder, err := ctrl.Distribute(db, 1, now, conf)
	if err != nil {
		t.Fatalf("cannot distribute: %s", err)
	}
	if remainder != 30 {
		t.Fatalf("want remainder 30, got %d", remainder)
	}

	assertPayout(t, ctrl, db, 1, x, 35)
	assertPayout(t, ctrl, db, 1, y, 35)

	_, next, err := ctrl.CurrentCycle(db)
	if err != nil {
		t.Fatalf("cannot get current cycle: %s", err)
	}
	if next.TotalPool != 30 {
		t.Fatalf("want the remainder as the next pool, got %d", next.TotalPool)
	}
}

func TestSubmitImpactOnlyOnce(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	var (
		now         = alms.AsUnixTime(time.Now())
		source      = almstest.NewCondition().Address()
		conf        = testConfiguration(nil, source)
		ctrl        = NewController()
		beneficiary = almstest.NewCondition().Address()
	)

	if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
		t.Fatalf("cannot open cycle: %s", err)
	}
	if err := ctrl.SubmitImpact(db, 1, beneficiary, 42, source); err != nil {
		t.Fatalf("cannot submit impact: %s", err)
	}
	if err := ctrl.SubmitImpact(db, 1, beneficiary, 1000, source); !ErrDuplicateSubmission.Is(err) {
		t.Fatalf("want ErrDuplicateSubmission, got %+v", err)
	}

	// The first submission stays authoritative.
	var impact ImpactScore
	if err := NewImpactBucket().One(db, beneficiaryKey(1, beneficiary), &impact); err != nil {
		t.Fatalf("cannot get impact: %s", err)
	}
	if impact.Score != 42 {
		t.Fatalf("want the first score, got %d", impact.Score)
	}
	_, cycle, err := ctrl.CurrentCycle(db)
	if err != nil {
		t.Fatalf("cannot get cycle: %s", err)
	}
	if cycle.TotalScore != 42 {
		t.Fatalf("want aggregate score 42, got %d", cycle.TotalScore)
	}

	// Scores are accepted after the close but not after the distribution.
	if _, _, err := ctrl.CloseCycle(db, 1, now); err != nil {
		t.Fatalf("cannot close cycle: %s", err)
	}
	late := almstest.NewCondition().Address()
	if err := ctrl.SubmitImpact(db, 1, late, 1, source); err != nil {
		t.Fatalf("cannot submit impact to a closed cycle: %s", err)
	}
	if _, err := ctrl.Distribute(db, 1, now, conf); err != nil {
		t.Fatalf("cannot distribute: %s", err)
	}
	tooLate := almstest.NewCondition().Address()
	if err := ctrl.SubmitImpact(db, 1, tooLate, 1, source); !ErrAlreadyDistributed.Is(err) {
		t.Fatalf("want ErrAlreadyDistributed, got %+v", err)
	}
}

func TestClosedCycleRejectsActivity(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	var (
		now   = alms.AsUnixTime(time.Now())
		conf  = testConfiguration(nil, nil)
		ctrl  = NewController()
		donor = almstest.NewCondition().Address()
	)

	if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
		t.Fatalf("cannot open cycle: %s", err)
	}
	if _, err := ctrl.Contribute(db, donor, 100, conf); err != nil {
		t.Fatalf("cannot contribute: %s", err)
	}
	if _, _, err := ctrl.CloseCycle(db, 1, now); err != nil {
		t.Fatalf("cannot close cycle: %s", err)
	}

	if _, err := ctrl.Contribute(db, donor, 1, conf); !ErrPhaseClosed.Is(err) {
		t.Fatalf("want ErrPhaseClosed, got %+v", err)
	}
	other := almstest.NewCondition().Address()
	if _, err := ctrl.Vote(db, donor, other, 1); !ErrPhaseClosed.Is(err) {
		t.Fatalf("want ErrPhaseClosed, got %+v", err)
	}

	// Closing twice does not transition and does not move the timestamp.
	cycle, closed, err := ctrl.CloseCycle(db, 1, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("cannot close cycle: %s", err)
	}
	if closed {
		t.Fatal("a second close must not transition")
	}
	if cycle.ClosedAt != now {
		t.Fatalf("want the original close time, got %s", cycle.ClosedAt)
	}
}

func TestCurrentCycle(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "fund")

	ctrl := NewController()

	if _, _, err := ctrl.CurrentCycle(db); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want ErrNotFound before the first cycle, got %+v", err)
	}

	now := alms.AsUnixTime(time.Now())
	conf := testConfiguration(nil, nil)
	for i := 1; i <= 3; i++ {
		if _, _, err := ctrl.OpenCycle(db, now, conf.CycleDuration, 0); err != nil {
			t.Fatalf("cannot open cycle: %s", err)
		}
	}
	cycleID, _, err := ctrl.CurrentCycle(db)
	if err != nil {
		t.Fatalf("cannot get current cycle: %s", err)
	}
	if cycleID != 3 {
		t.Fatalf("want the newest cycle, got %d", cycleID)
	}
}

func assertPayout(t *testing.T, ctrl *Controller, db alms.ReadOnlyKVStore, cycleID uint64, beneficiary alms.Address, want int64) {
	t.Helper()
	amount, err := ctrl.Payout(db, cycleID, beneficiary)
	if err != nil {
		t.Fatalf("cannot get payout: %s", err)
	}
	if amount.Whole != want {
		t.Fatalf("want payout %d, got %d", want, amount.Whole)
	}
	if want > 0 && !coin.NewCoin(want, 0, "ALM").Equals(amount) {
		t.Fatalf("want whole ALM units, got %s", amount)
	}
}
