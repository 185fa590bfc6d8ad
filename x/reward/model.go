package reward

import (
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
)

func init() {
	migration.MustRegister(1, &Reward{}, migration.NoModification)
}

var _ orm.Model = (*Reward)(nil)

func (r *Reward) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", r.Donor.Validate())
	if r.Balance == nil {
		errs = errors.AppendField(errs, "Balance", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Balance", r.Balance.Validate())
		if !r.Balance.IsNonNegative() {
			errs = errors.AppendField(errs, "Balance",
				errors.Wrap(errors.ErrAmount, "balance cannot be negative"))
		}
	}
	return errs
}

func (r *Reward) Copy() orm.CloneableData {
	return &Reward{
		Metadata: r.Metadata.Copy(),
		Donor:    r.Donor.Clone(),
		Balance:  r.Balance.Clone(),
	}
}

// NewRewardBucket returns a bucket for keeping track of reward balances.
// Entities are keyed by the donor address, so every donor has at most one
// reward account.
func NewRewardBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rwd", &Reward{})
	return migration.NewModelBucket("reward", b)
}
