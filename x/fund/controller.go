package fund

import (
	"math"
	"math/big"
	"sort"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/orm"
)

// Controller implements the fund ledger operations. Every mutating method
// is a single write set against the given store: the handlers run it
// under a cache wrap, so a returned error leaves no partial state behind.
type Controller struct {
	cycles  orm.ModelBucket
	donors  orm.ModelBucket
	votes   orm.ModelBucket
	tallies orm.ModelBucket
	impacts orm.ModelBucket
	payouts orm.ModelBucket
}

func NewController() *Controller {
	return &Controller{
		cycles:  NewCycleBucket(),
		donors:  NewDonorBucket(),
		votes:   NewVoteBucket(),
		tallies: NewTallyBucket(),
		impacts: NewImpactBucket(),
		payouts: NewPayoutBucket(),
	}
}

// CurrentCycle returns the most recently opened cycle. ErrNotFound is
// returned before the first cycle was opened.
func (c *Controller) CurrentCycle(db alms.ReadOnlyKVStore) (uint64, *Cycle, error) {
	key, raw, err := latestInPrefix(db, []byte(cycleBucketName+":"))
	if err != nil {
		return 0, nil, err
	}
	if raw == nil {
		return 0, nil, errors.Wrap(errors.ErrNotFound, "no cycle")
	}
	var cycle Cycle
	if err := cycle.Unmarshal(raw); err != nil {
		return 0, nil, errors.Wrap(err, "unmarshal cycle")
	}
	return cycleIDFromKey(key), &cycle, nil
}

// CycleByID returns a cycle with the given sequence number.
func (c *Controller) CycleByID(db alms.ReadOnlyKVStore, cycleID uint64) (*Cycle, error) {
	var cycle Cycle
	if err := c.cycles.One(db, cycleKey(cycleID), &cycle); err != nil {
		return nil, errors.Wrapf(err, "cycle %d", cycleID)
	}
	return &cycle, nil
}

// OpenCycle opens a new cycle seeded with the given pool amount. The
// caller must guarantee that no cycle is currently open: the fund
// maintains exactly one non distributed cycle at any time.
func (c *Controller) OpenCycle(db alms.KVStore, now alms.UnixTime, duration alms.UnixDuration, seed int64) (uint64, *Cycle, error) {
	cycle := Cycle{
		Metadata:  &alms.Metadata{Schema: 1},
		Phase:     PhaseOpen,
		OpenedAt:  now,
		ClosesAt:  now.Add(duration.Duration()),
		TotalPool: seed,
	}
	key, err := c.cycles.Put(db, nil, &cycle)
	if err != nil {
		return 0, nil, errors.Wrap(err, "store cycle")
	}
	return cycleIDFromKey(key), &cycle, nil
}

// CloseCycle transitions a cycle from Open to Closed, freezing the pool
// total. Closing an already closed or distributed cycle is a no-op: the
// first transition captured the pool and stays authoritative. The
// returned flag reports whether this call performed the transition.
func (c *Controller) CloseCycle(db alms.KVStore, cycleID uint64, now alms.UnixTime) (*Cycle, bool, error) {
	cycle, err := c.CycleByID(db, cycleID)
	if err != nil {
		return nil, false, err
	}
	if cycle.Phase != PhaseOpen {
		return cycle, false, nil
	}
	cycle.Phase = PhaseClosed
	cycle.ClosedAt = now
	if _, err := c.cycles.Put(db, cycleKey(cycleID), cycle); err != nil {
		return nil, false, errors.Wrap(err, "store cycle")
	}
	return cycle, true, nil
}

// Contribute moves the given number of whole units into the pool of the
// currently open cycle and issues voting power in exchange. The donor
// account, the cycle pool and the issued power are updated in one write
// set.
func (c *Controller) Contribute(db alms.KVStore, donor alms.Address, units int64, conf Configuration) (uint64, error) {
	cycleID, cycle, err := c.currentOpen(db)
	if err != nil {
		return 0, err
	}

	power, err := fractionMul(units, *conf.Issuance)
	if err != nil {
		return 0, errors.Wrap(err, "issue power")
	}

	acct, err := c.donorAccount(db, cycleID, donor)
	if err != nil {
		return 0, err
	}
	if acct.Contributed, err = addInt64(acct.Contributed, units); err != nil {
		return 0, errors.Wrap(err, "donor contribution total")
	}
	if acct.Power, err = addInt64(acct.Power, power); err != nil {
		return 0, errors.Wrap(err, "donor power")
	}
	if _, err := c.donors.Put(db, donorKey(cycleID, donor), acct); err != nil {
		return 0, errors.Wrap(err, "store donor account")
	}

	if cycle.TotalPool, err = addInt64(cycle.TotalPool, units); err != nil {
		return 0, errors.Wrap(err, "pool total")
	}
	if _, err := c.cycles.Put(db, cycleKey(cycleID), cycle); err != nil {
		return 0, errors.Wrap(err, "store cycle")
	}
	return cycleID, nil
}

// Vote spends voting power of a donor on a beneficiary within the
// currently open cycle. The donor is debited the full power while the
// beneficiary tally grows by the square root increment of the donor's
// cumulative spend, so splitting a vote yields exactly the same influence
// as casting it at once.
func (c *Controller) Vote(db alms.KVStore, donor, beneficiary alms.Address, power int64) (uint64, error) {
	cycleID, cycle, err := c.currentOpen(db)
	if err != nil {
		return 0, err
	}

	acct, err := c.donorAccount(db, cycleID, donor)
	if err != nil {
		return 0, err
	}
	if acct.Power < power {
		return 0, errors.Wrapf(ErrInsufficientPower, "%d power left", acct.Power)
	}
	acct.Power -= power
	if _, err := c.donors.Put(db, donorKey(cycleID, donor), acct); err != nil {
		return 0, errors.Wrap(err, "store donor account")
	}

	entry := VoteEntry{
		Metadata:    &alms.Metadata{Schema: 1},
		Donor:       donor,
		Beneficiary: beneficiary,
	}
	vKey := voteKey(cycleID, donor, beneficiary)
	switch err := c.votes.One(db, vKey, &entry); {
	case err == nil || errors.ErrNotFound.Is(err):
		// A missing entry is a zero cumulative spend.
	default:
		return 0, errors.Wrap(err, "get vote entry")
	}
	spent := entry.Power
	if entry.Power, err = addInt64(spent, power); err != nil {
		return 0, errors.Wrap(err, "cumulative spend")
	}
	if _, err := c.votes.Put(db, vKey, &entry); err != nil {
		return 0, errors.Wrap(err, "store vote entry")
	}

	// The tally holds isqrt of the cumulative spend. Adding the isqrt
	// increments per vote telescopes to the same value as computing the
	// square root once over the final spend.
	inc := isqrt(entry.Power) - isqrt(spent)
	if inc > 0 {
		tally := Tally{
			Metadata:    &alms.Metadata{Schema: 1},
			Beneficiary: beneficiary,
		}
		tKey := beneficiaryKey(cycleID, beneficiary)
		switch err := c.tallies.One(db, tKey, &tally); {
		case err == nil || errors.ErrNotFound.Is(err):
		default:
			return 0, errors.Wrap(err, "get tally")
		}
		if tally.Total, err = addInt64(tally.Total, inc); err != nil {
			return 0, errors.Wrap(err, "tally total")
		}
		if _, err := c.tallies.Put(db, tKey, &tally); err != nil {
			return 0, errors.Wrap(err, "store tally")
		}
		if cycle.TotalTally, err = addInt64(cycle.TotalTally, inc); err != nil {
			return 0, errors.Wrap(err, "tally aggregate")
		}
		if _, err := c.cycles.Put(db, cycleKey(cycleID), cycle); err != nil {
			return 0, errors.Wrap(err, "store cycle")
		}
	}
	return cycleID, nil
}

// SubmitImpact records the impact score of a beneficiary for a cycle.
// The first submission is final: any further one fails without touching
// the stored score. Submissions are accepted until the cycle is
// distributed, so they can race the distribution but never the close.
func (c *Controller) SubmitImpact(db alms.KVStore, cycleID uint64, beneficiary alms.Address, score int64, source alms.Address) error {
	cycle, err := c.CycleByID(db, cycleID)
	if err != nil {
		return err
	}
	if cycle.Phase == PhaseDistributed {
		return errors.Wrapf(ErrAlreadyDistributed, "cycle %d", cycleID)
	}

	key := beneficiaryKey(cycleID, beneficiary)
	switch err := c.impacts.Has(db, key); {
	case err == nil:
		return errors.Wrapf(ErrDuplicateSubmission, "cycle %d", cycleID)
	case errors.ErrNotFound.Is(err):
		// First submission.
	default:
		return errors.Wrap(err, "check impact")
	}

	impact := ImpactScore{
		Metadata:    &alms.Metadata{Schema: 1},
		Beneficiary: beneficiary,
		Score:       score,
		Source:      source,
	}
	if _, err := c.impacts.Put(db, key, &impact); err != nil {
		return errors.Wrap(err, "store impact")
	}

	if cycle.TotalScore, err = addInt64(cycle.TotalScore, score); err != nil {
		return errors.Wrap(err, "score aggregate")
	}
	if _, err := c.cycles.Put(db, cycleKey(cycleID), cycle); err != nil {
		return errors.Wrap(err, "store cycle")
	}
	return nil
}

// Distribute computes and writes the payouts of a closed cycle, seals the
// cycle and opens the next one seeded with the rounding remainder. All of
// it happens in one write set, so a repeated call observes the terminal
// phase and fails without touching state.
func (c *Controller) Distribute(db alms.KVStore, cycleID uint64, now alms.UnixTime, conf Configuration) (int64, error) {
	cycle, err := c.CycleByID(db, cycleID)
	if err != nil {
		return 0, err
	}
	switch cycle.Phase {
	case PhaseClosed:
	case PhaseDistributed:
		return 0, errors.Wrapf(ErrAlreadyDistributed, "cycle %d", cycleID)
	default:
		return 0, errors.Wrapf(ErrNotClosed, "cycle %d", cycleID)
	}

	allocs, err := c.cycleAllocations(db, cycleID)
	if err != nil {
		return 0, err
	}

	var paid int64
	pool := big.NewInt(cycle.TotalPool)
	for _, a := range allocs {
		share := new(big.Rat)
		if cycle.TotalTally > 0 && a.tally > 0 {
			part := new(big.Rat).Mul(fractionRat(*conf.VoteWeight), big.NewRat(a.tally, cycle.TotalTally))
			share.Add(share, part)
		}
		if cycle.TotalScore > 0 && a.score > 0 {
			part := new(big.Rat).Mul(fractionRat(*conf.ImpactWeight), big.NewRat(a.score, cycle.TotalScore))
			share.Add(share, part)
		}
		// floor(pool * share). Everything is non negative and every
		// share is at most one, so the result fits the pool type.
		amount := new(big.Int).Mul(pool, share.Num())
		amount.Quo(amount, share.Denom())
		if amount.Sign() == 0 {
			continue
		}
		payout := Payout{
			Metadata:    &alms.Metadata{Schema: 1},
			Beneficiary: a.beneficiary,
			Amount:      coin.NewCoinp(amount.Int64(), 0, conf.Ticker),
		}
		if _, err := c.payouts.Put(db, beneficiaryKey(cycleID, a.beneficiary), &payout); err != nil {
			return 0, errors.Wrap(err, "store payout")
		}
		paid += amount.Int64()
	}

	cycle.Phase = PhaseDistributed
	if _, err := c.cycles.Put(db, cycleKey(cycleID), cycle); err != nil {
		return 0, errors.Wrap(err, "store cycle")
	}

	// The rounding remainder is not lost: it seeds the next cycle.
	remainder := cycle.TotalPool - paid
	if _, _, err := c.OpenCycle(db, now, conf.CycleDuration, remainder); err != nil {
		return 0, errors.Wrap(err, "open next cycle")
	}
	return remainder, nil
}

// Payout returns the amount paid out to a beneficiary in a cycle. A
// beneficiary without a payout record received nothing.
func (c *Controller) Payout(db alms.ReadOnlyKVStore, cycleID uint64, beneficiary alms.Address) (coin.Coin, error) {
	var payout Payout
	switch err := c.payouts.One(db, beneficiaryKey(cycleID, beneficiary), &payout); {
	case err == nil:
		return *payout.Amount, nil
	case errors.ErrNotFound.Is(err):
		return coin.Coin{}, nil
	default:
		return coin.Coin{}, errors.Wrap(err, "get payout")
	}
}

// currentOpen returns the current cycle if it accepts contributions and
// votes, ErrPhaseClosed otherwise.
func (c *Controller) currentOpen(db alms.ReadOnlyKVStore) (uint64, *Cycle, error) {
	cycleID, cycle, err := c.CurrentCycle(db)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return 0, nil, errors.Wrap(ErrPhaseClosed, "no cycle is open")
		}
		return 0, nil, err
	}
	if cycle.Phase != PhaseOpen {
		return 0, nil, errors.Wrapf(ErrPhaseClosed, "cycle %d", cycleID)
	}
	return cycleID, cycle, nil
}

// donorAccount returns the donor account for a cycle, a fresh zero
// account if none exists yet.
func (c *Controller) donorAccount(db alms.ReadOnlyKVStore, cycleID uint64, donor alms.Address) (*DonorAccount, error) {
	acct := DonorAccount{
		Metadata: &alms.Metadata{Schema: 1},
		Donor:    donor,
	}
	switch err := c.donors.One(db, donorKey(cycleID, donor), &acct); {
	case err == nil || errors.ErrNotFound.Is(err):
		return &acct, nil
	default:
		return nil, errors.Wrap(err, "get donor account")
	}
}

// allocation groups the distribution inputs of a single beneficiary.
type allocation struct {
	beneficiary alms.Address
	tally       int64
	score       int64
}

// cycleAllocations walks the tally and impact records of a cycle and
// merges them per beneficiary, ordered by the beneficiary address so the
// distribution writes are deterministic. Only beneficiaries with a
// nonzero tally or score are listed.
func (c *Controller) cycleAllocations(db alms.ReadOnlyKVStore, cycleID uint64) ([]allocation, error) {
	byAddr := make(map[string]*allocation)

	prefix := append([]byte(tallyBucketName+":"), cycleKey(cycleID)...)
	err := walkPrefix(db, prefix, func(suffix, value []byte) error {
		var tally Tally
		if err := tally.Unmarshal(value); err != nil {
			return errors.Wrap(err, "unmarshal tally")
		}
		if tally.Total == 0 {
			return nil
		}
		byAddr[string(suffix)] = &allocation{
			beneficiary: alms.Address(suffix).Clone(),
			tally:       tally.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	prefix = append([]byte(impactBucketName+":"), cycleKey(cycleID)...)
	err = walkPrefix(db, prefix, func(suffix, value []byte) error {
		var impact ImpactScore
		if err := impact.Unmarshal(value); err != nil {
			return errors.Wrap(err, "unmarshal impact")
		}
		if impact.Score == 0 {
			return nil
		}
		if a, ok := byAddr[string(suffix)]; ok {
			a.score = impact.Score
			return nil
		}
		byAddr[string(suffix)] = &allocation{
			beneficiary: alms.Address(suffix).Clone(),
			score:       impact.Score,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(byAddr))
	for addr := range byAddr {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	allocs := make([]allocation, 0, len(addrs))
	for _, addr := range addrs {
		allocs = append(allocs, *byAddr[addr])
	}
	return allocs, nil
}

// walkPrefix calls fn for every key with the given prefix, passing the
// key with the prefix stripped.
func walkPrefix(db alms.ReadOnlyKVStore, prefix []byte, fn func(suffix, value []byte) error) error {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return err
	}
	defer itr.Release()

	for {
		key, value, err := itr.Next()
		switch {
		case err == nil:
			if err := fn(key[len(prefix):], value); err != nil {
				return err
			}
		case errors.ErrIteratorDone.Is(err):
			return nil
		default:
			return err
		}
	}
}

// latestInPrefix returns the last key and value within the prefix, the
// key with the prefix stripped. A nil value means an empty range.
func latestInPrefix(db alms.ReadOnlyKVStore, prefix []byte) ([]byte, []byte, error) {
	start, end := prefixRange(prefix)
	itr, err := db.ReverseIterator(start, end)
	if err != nil {
		return nil, nil, err
	}
	defer itr.Release()

	key, value, err := itr.Next()
	switch {
	case err == nil:
		return key[len(prefix):], value, nil
	case errors.ErrIteratorDone.Is(err):
		return nil, nil, nil
	default:
		return nil, nil, err
	}
}

// prefixRange turns a prefix into an iterator (start, end) range.
func prefixRange(prefix []byte) ([]byte, []byte) {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}

// isqrt returns the integer square root, the greatest value whose square
// does not exceed n. Digit by digit, no floating point involved.
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := uint64(n)
	var res uint64
	bit := uint64(1) << 62
	for bit > x {
		bit >>= 2
	}
	for bit != 0 {
		if x >= res+bit {
			x -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return int64(res)
}

// addInt64 returns a+b or ErrOverflow when the sum exceeds the type. Both
// arguments are non negative in every caller.
func addInt64(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// fractionMul returns floor(v * f) or ErrOverflow.
func fractionMul(v int64, f alms.Fraction) (int64, error) {
	if f.Denominator == 0 {
		return 0, errors.Wrap(errors.ErrInput, "zero division")
	}
	num := int64(f.Numerator)
	if v == 0 || num == 0 {
		return 0, nil
	}
	if v > math.MaxInt64/num {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %s", v, f.String())
	}
	return v * num / int64(f.Denominator), nil
}

// fractionRat converts a configuration fraction into a big rational.
func fractionRat(f alms.Fraction) *big.Rat {
	return big.NewRat(int64(f.Numerator), int64(f.Denominator))
}
