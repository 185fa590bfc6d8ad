package reward

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/orm"
)

func RegisterQuery(qr alms.QueryRouter) {
	NewRewardBucket().Register("rewards", qr)
}

// Controller is the only write path into the reward ledger. Other
// extensions call Credit to mint tokens for a donor.
type Controller struct {
	bucket orm.ModelBucket
}

func NewController() Controller {
	return Controller{bucket: NewRewardBucket()}
}

// Credit mints reward tokens into the donor's account, the configured rate
// worth of tokens per contributed unit. A configuration with a zero rate
// numerator disables minting without an error.
func (c Controller) Credit(db alms.KVStore, donor alms.Address, units int64) error {
	if units <= 0 {
		return errors.Wrap(errors.ErrAmount, "units must be greater than zero")
	}
	if err := donor.Validate(); err != nil {
		return errors.Wrap(err, "donor")
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}

	minted, err := coin.NewCoin(units, 0, conf.Ticker).Multiply(int64(conf.Rate.Numerator))
	if err != nil {
		return errors.Wrap(err, "rate numerator")
	}
	if minted.IsZero() {
		return nil
	}
	minted, _, err = minted.Divide(int64(conf.Rate.Denominator))
	if err != nil {
		return errors.Wrap(err, "rate denominator")
	}
	if minted.IsZero() {
		return nil
	}

	var rwd Reward
	switch err := c.bucket.One(db, donor, &rwd); {
	case err == nil:
		total, err := rwd.Balance.Add(minted)
		if err != nil {
			return errors.Wrap(err, "add balance")
		}
		rwd.Balance = &total
	case errors.ErrNotFound.Is(err):
		rwd = Reward{
			Metadata: &alms.Metadata{Schema: 1},
			Donor:    donor,
			Balance:  &minted,
		}
	default:
		return errors.Wrap(err, "get reward")
	}

	if _, err := c.bucket.Put(db, donor, &rwd); err != nil {
		return errors.Wrap(err, "store reward")
	}
	return nil
}

// Balance returns the total amount ever minted for the donor. A donor
// without a reward account has a zero balance.
func (c Controller) Balance(db alms.ReadOnlyKVStore, donor alms.Address) (coin.Coin, error) {
	var rwd Reward
	switch err := c.bucket.One(db, donor, &rwd); {
	case err == nil:
		return *rwd.Balance, nil
	case errors.ErrNotFound.Is(err):
		return coin.Coin{}, nil
	default:
		return coin.Coin{}, errors.Wrap(err, "get reward")
	}
}
