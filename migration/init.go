package migration

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ alms.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to
// the database
func (*Initializer) FromGenesis(opts alms.Options, params alms.GenesisParams, kv alms.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "migration", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var pkgs []string
	if err := opts.ReadOptions("initialize_schema", &pkgs); err != nil {
		return errors.Wrap(err, "initialize schema packages")
	}
	// Schema versioning of this package is always initialized so that the
	// upgrade schema message handling is available from the start.
	pkgs = append(pkgs, "migration")
	MustInitPkg(kv, pkgs...)
	return nil
}
