package reward

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
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	if !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Ticker",
			errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker))
	}
	if c.Rate == nil {
		errs = errors.AppendField(errs, "Rate", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Rate", c.Rate.Validate())
	}
	return errs
}

func (c *Configuration) Copy() orm.CloneableData {
	var rate *alms.Fraction
	if c.Rate != nil {
		r := *c.Rate
		rate = &r
	}
	return &Configuration{
		Metadata: c.Metadata.Copy(),
		Admin:    c.Admin.Clone(),
		Ticker:   c.Ticker,
		Rate:     rate,
	}
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "reward", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
