package fund

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ alms.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save it to
// the database. The configuration is mandatory because a fund without a
// cycle duration and weights cannot operate. The first cycle is not opened
// here, the ticker opens it on the first block.
func (*Initializer) FromGenesis(opts alms.Options, params alms.GenesisParams, kv alms.KVStore) error {
	conf := Configuration{
		Metadata: &alms.Metadata{Schema: 1},
	}
	if err := gconf.InitConfig(kv, opts, "fund", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
