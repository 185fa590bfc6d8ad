package fund

import (
	"encoding/binary"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
)

func init() {
	migration.MustRegister(1, &Cycle{}, migration.NoModification)
	migration.MustRegister(1, &DonorAccount{}, migration.NoModification)
	migration.MustRegister(1, &VoteEntry{}, migration.NoModification)
	migration.MustRegister(1, &Tally{}, migration.NoModification)
	migration.MustRegister(1, &ImpactScore{}, migration.NoModification)
	migration.MustRegister(1, &Payout{}, migration.NoModification)
}

var _ orm.Model = (*Cycle)(nil)

func (c *Cycle) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	switch c.Phase {
	case PhaseOpen, PhaseClosed, PhaseDistributed:
		// ok
	default:
		errs = errors.AppendField(errs, "Phase",
			errors.Wrapf(errors.ErrState, "invalid phase %d", c.Phase))
	}
	errs = errors.AppendField(errs, "OpenedAt", c.OpenedAt.Validate())
	errs = errors.AppendField(errs, "ClosesAt", c.ClosesAt.Validate())
	if c.Phase != PhaseOpen {
		errs = errors.AppendField(errs, "ClosedAt", c.ClosedAt.Validate())
	}
	if c.TotalPool < 0 {
		errs = errors.AppendField(errs, "TotalPool",
			errors.Wrap(errors.ErrAmount, "pool cannot be negative"))
	}
	if c.TotalTally < 0 {
		errs = errors.AppendField(errs, "TotalTally",
			errors.Wrap(errors.ErrAmount, "tally cannot be negative"))
	}
	if c.TotalScore < 0 {
		errs = errors.AppendField(errs, "TotalScore",
			errors.Wrap(errors.ErrAmount, "score cannot be negative"))
	}
	return errs
}

func (c *Cycle) Copy() orm.CloneableData {
	return &Cycle{
		Metadata:   c.Metadata.Copy(),
		Phase:      c.Phase,
		OpenedAt:   c.OpenedAt,
		ClosesAt:   c.ClosesAt,
		ClosedAt:   c.ClosedAt,
		TotalPool:  c.TotalPool,
		TotalTally: c.TotalTally,
		TotalScore: c.TotalScore,
	}
}

var _ orm.Model = (*DonorAccount)(nil)

func (a *DonorAccount) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", a.Donor.Validate())
	if a.Contributed < 0 {
		errs = errors.AppendField(errs, "Contributed",
			errors.Wrap(errors.ErrAmount, "contribution cannot be negative"))
	}
	if a.Power < 0 {
		errs = errors.AppendField(errs, "Power",
			errors.Wrap(errors.ErrAmount, "power cannot be negative"))
	}
	return errs
}

func (a *DonorAccount) Copy() orm.CloneableData {
	return &DonorAccount{
		Metadata:    a.Metadata.Copy(),
		Donor:       a.Donor.Clone(),
		Contributed: a.Contributed,
		Power:       a.Power,
	}
}

var _ orm.Model = (*VoteEntry)(nil)

func (v *VoteEntry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", v.Donor.Validate())
	errs = errors.AppendField(errs, "Beneficiary", v.Beneficiary.Validate())
	if v.Power <= 0 {
		errs = errors.AppendField(errs, "Power",
			errors.Wrap(errors.ErrAmount, "power must be greater than zero"))
	}
	return errs
}

func (v *VoteEntry) Copy() orm.CloneableData {
	return &VoteEntry{
		Metadata:    v.Metadata.Copy(),
		Donor:       v.Donor.Clone(),
		Beneficiary: v.Beneficiary.Clone(),
		Power:       v.Power,
	}
}

var _ orm.Model = (*Tally)(nil)

func (t *Tally) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	errs = errors.AppendField(errs, "Beneficiary", t.Beneficiary.Validate())
	if t.Total < 0 {
		errs = errors.AppendField(errs, "Total",
			errors.Wrap(errors.ErrAmount, "total cannot be negative"))
	}
	return errs
}

func (t *Tally) Copy() orm.CloneableData {
	return &Tally{
		Metadata:    t.Metadata.Copy(),
		Beneficiary: t.Beneficiary.Clone(),
		Total:       t.Total,
	}
}

var _ orm.Model = (*ImpactScore)(nil)

func (s *ImpactScore) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Beneficiary", s.Beneficiary.Validate())
	errs = errors.AppendField(errs, "Source", s.Source.Validate())
	if s.Score < 0 {
		errs = errors.AppendField(errs, "Score",
			errors.Wrap(errors.ErrAmount, "score cannot be negative"))
	}
	return errs
}

func (s *ImpactScore) Copy() orm.CloneableData {
	return &ImpactScore{
		Metadata:    s.Metadata.Copy(),
		Beneficiary: s.Beneficiary.Clone(),
		Score:       s.Score,
		Source:      s.Source.Clone(),
	}
}

var _ orm.Model = (*Payout)(nil)

func (p *Payout) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	errs = errors.AppendField(errs, "Beneficiary", p.Beneficiary.Validate())
	if p.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Amount", p.Amount.Validate())
		if !p.Amount.IsPositive() {
			errs = errors.AppendField(errs, "Amount",
				errors.Wrap(errors.ErrAmount, "payout must be greater than zero"))
		}
	}
	return errs
}

func (p *Payout) Copy() orm.CloneableData {
	return &Payout{
		Metadata:    p.Metadata.Copy(),
		Beneficiary: p.Beneficiary.Clone(),
		Amount:      p.Amount.Clone(),
	}
}

// Bucket short names. Raw database keys are the short name, a colon and
// the entity key, which the distribution relies on when walking a cycle
// prefix.
const (
	cycleBucketName  = "cyc"
	donorBucketName  = "don"
	voteBucketName   = "vot"
	tallyBucketName  = "tly"
	impactBucketName = "imp"
	payoutBucketName = "pay"
)

// NewCycleBucket returns a bucket for keeping track of cycles. Cycles are
// keyed by their 8 byte big endian sequence number, so iteration order is
// creation order and the newest cycle is the last key.
func NewCycleBucket() orm.ModelBucket {
	b := orm.NewModelBucket(cycleBucketName, &Cycle{},
		orm.WithIDSequence(cycleSeq),
	)
	return migration.NewModelBucket("fund", b)
}

// cycleSeq issues cycle ids. The sequence value is the id of the most
// recently opened cycle.
var cycleSeq = orm.NewSequence("fund", "cycle")

// NewDonorBucket returns a bucket for keeping track of per cycle donor
// accounts, keyed by the cycle id and the donor address.
func NewDonorBucket() orm.ModelBucket {
	b := orm.NewModelBucket(donorBucketName, &DonorAccount{})
	return migration.NewModelBucket("fund", b)
}

// NewVoteBucket returns a bucket for keeping track of cumulative vote
// entries, keyed by the cycle id, the donor and the beneficiary address.
func NewVoteBucket() orm.ModelBucket {
	b := orm.NewModelBucket(voteBucketName, &VoteEntry{})
	return migration.NewModelBucket("fund", b)
}

// NewTallyBucket returns a bucket for keeping track of running influence
// tallies, keyed by the cycle id and the beneficiary address.
func NewTallyBucket() orm.ModelBucket {
	b := orm.NewModelBucket(tallyBucketName, &Tally{})
	return migration.NewModelBucket("fund", b)
}

// NewImpactBucket returns a bucket for keeping track of impact scores,
// keyed by the cycle id and the beneficiary address.
func NewImpactBucket() orm.ModelBucket {
	b := orm.NewModelBucket(impactBucketName, &ImpactScore{})
	return migration.NewModelBucket("fund", b)
}

// NewPayoutBucket returns a bucket for keeping track of emitted payouts,
// keyed by the cycle id and the beneficiary address.
func NewPayoutBucket() orm.ModelBucket {
	b := orm.NewModelBucket(payoutBucketName, &Payout{})
	return migration.NewModelBucket("fund", b)
}

// cycleKey returns the primary bucket key of a cycle.
func cycleKey(cycleID uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, cycleID)
	return raw
}

// cycleIDFromKey is the reverse of cycleKey.
func cycleIDFromKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// donorKey returns the primary key of a donor account within a cycle.
func donorKey(cycleID uint64, donor alms.Address) []byte {
	return append(cycleKey(cycleID), donor...)
}

// voteKey returns the primary key of a cumulative vote entry.
func voteKey(cycleID uint64, donor, beneficiary alms.Address) []byte {
	return append(donorKey(cycleID, donor), beneficiary...)
}

// beneficiaryKey returns the per cycle primary key of tallies, impact
// scores and payouts.
func beneficiaryKey(cycleID uint64, beneficiary alms.Address) []byte {
	return append(cycleKey(cycleID), beneficiary...)
}
