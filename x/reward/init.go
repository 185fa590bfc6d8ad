package reward

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ alms.Initializer = (*Initializer)(nil)

// FromGenesis will parse the reward configuration from genesis and save it
// to the database. The configuration is mandatory; a chain that does not
// want to mint rewards declares a zero rate.
func (*Initializer) FromGenesis(opts alms.Options, params alms.GenesisParams, kv alms.KVStore) error {
	conf := Configuration{
		Metadata: &alms.Metadata{Schema: 1},
	}
	if err := gconf.InitConfig(kv, opts, "reward", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
