package registry

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ alms.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial beneficiary info from genesis and save it
// to the database. The configuration is mandatory because without an admin
// no beneficiary could ever be verified.
func (*Initializer) FromGenesis(opts alms.Options, params alms.GenesisParams, kv alms.KVStore) error {
	conf := Configuration{
		Metadata: &alms.Metadata{Schema: 1},
	}
	if err := gconf.InitConfig(kv, opts, "registry", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var input struct {
		Beneficiaries []struct {
			Address  alms.Address `json:"address"`
			Name     string       `json:"name"`
			Verified bool         `json:"verified"`
		} `json:"beneficiaries"`
	}
	if err := opts.ReadOptions("registry", &input); err != nil {
		return errors.Wrap(err, "cannot load beneficiaries")
	}

	bucket := NewBeneficiaryBucket()
	for i, b := range input.Beneficiaries {
		bnf := Beneficiary{
			Metadata: &alms.Metadata{Schema: 1},
			Address:  b.Address,
			Name:     b.Name,
			Verified: b.Verified,
		}
		if err := bnf.Validate(); err != nil {
			return errors.Wrapf(err, "beneficiary #%d is invalid", i)
		}
		if _, err := bucket.Put(kv, nil, &bnf); err != nil {
			return errors.Wrapf(err, "cannot store %d beneficiary", i)
		}
	}
	return nil
}
