package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
)

// ValidateGenesis runs the application initializer against every given
// genesis file, discarding all writes. It returns the first error
// encountered so broken genesis files are caught before starting a node.
func ValidateGenesis(ini alms.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini alms.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State alms.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(err, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, alms.GenesisParams{}, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}

	return nil
}
