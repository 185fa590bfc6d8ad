package migration

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func mustLoadConf(db gconf.ReadStore) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentAdmin returns the migration extension admin address as currently
// configured. It is a convenient initConfAdmin helper for all
// gconf.NewUpdateConfigurationHandler users.
func CurrentAdmin(db alms.ReadOnlyKVStore) (alms.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Admin, nil
}
