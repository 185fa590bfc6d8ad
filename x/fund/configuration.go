package fund

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "TrustedSource", c.TrustedSource.Validate())
	if !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Ticker",
			errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker))
	}
	if c.CycleDuration <= 0 {
		errs = errors.AppendField(errs, "CycleDuration",
			errors.Wrap(errors.ErrInput, "duration must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Issuance", validPositiveFraction(c.Issuance))
	errs = errors.AppendField(errs, "VoteWeight", validPositiveFraction(c.VoteWeight))
	errs = errors.AppendField(errs, "ImpactWeight", validPositiveFraction(c.ImpactWeight))
	if errs == nil && !weightsSumToOne(*c.VoteWeight, *c.ImpactWeight) {
		errs = errors.AppendField(errs, "VoteWeight",
			errors.Wrap(errors.ErrInput, "vote and impact weights must sum up to one"))
	}
	return errs
}

func validPositiveFraction(f *alms.Fraction) error {
	if f == nil {
		return errors.ErrEmpty
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Denominator == 0 {
		return errors.Wrap(errors.ErrInput, "zero denominator")
	}
	return nil
}

// weightsSumToOne checks a/b + c/d == 1 by cross multiplication. Both
// fractions were validated to have nonzero denominators.
func weightsSumToOne(vote, impact alms.Fraction) bool {
	a := uint64(vote.Numerator) * uint64(impact.Denominator)
	b := uint64(impact.Numerator) * uint64(vote.Denominator)
	return a+b == uint64(vote.Denominator)*uint64(impact.Denominator)
}

func (c *Configuration) Copy() orm.CloneableData {
	cpy := &Configuration{
		Metadata:      c.Metadata.Copy(),
		Owner:         c.Owner.Clone(),
		TrustedSource: c.TrustedSource.Clone(),
		Ticker:        c.Ticker,
		CycleDuration: c.CycleDuration,
	}
	if c.Issuance != nil {
		f := *c.Issuance
		cpy.Issuance = &f
	}
	if c.VoteWeight != nil {
		f := *c.VoteWeight
		cpy.VoteWeight = &f
	}
	if c.ImpactWeight != nil {
		f := *c.ImpactWeight
		cpy.ImpactWeight = &f
	}
	return cpy
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "fund", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
