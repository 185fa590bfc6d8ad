package registry

import (
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
	return errs
}

func (c *Configuration) Copy() orm.CloneableData {
	return &Configuration{
		Metadata: c.Metadata.Copy(),
		Admin:    c.Admin.Clone(),
	}
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "registry", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
