package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	cfg "github.com/tendermint/tendermint/config"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/p2p"
	"github.com/tendermint/tendermint/privval"
	tmtypes "github.com/tendermint/tendermint/types"
	tmtime "github.com/tendermint/tendermint/types/time"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// InitCmd will initialize all files for tendermint, along with proper
// app_state. The application can pass in a function to generate proper
// state. And may want to use GenerateCoinKey to create default account(s).
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	config := cfg.DefaultConfig()
	config.SetRoot(home)
	cfg.EnsureRoot(home)

	pv, err := initPrivValidator(config, logger)
	if err != nil {
		return err
	}
	if err := initNodeKey(config, logger); err != nil {
		return err
	}
	if err := initGenesis(config, pv, logger); err != nil {
		return err
	}

	// no app_state, leave like tendermint
	if gen == nil {
		return nil
	}

	// Now, we want to add the custom app_state
	options, err := gen(args)
	if err != nil {
		return err
	}

	// And add them to the genesis file
	return addGenesisOptions(config.GenesisFile(), options)
}

func initPrivValidator(config *cfg.Config, logger log.Logger) (*privval.FilePV, error) {
	keyFile := config.PrivValidatorKeyFile()
	stateFile := config.PrivValidatorStateFile()
	if cmn.FileExists(keyFile) {
		logger.Info("Found private validator", "path", keyFile)
		return privval.LoadFilePV(keyFile, stateFile), nil
	}
	pv := privval.GenFilePV(keyFile, stateFile)
	pv.Save()
	logger.Info("Generated private validator", "path", keyFile)
	return pv, nil
}

func initNodeKey(config *cfg.Config, logger log.Logger) error {
	nodeKeyFile := config.NodeKeyFile()
	if cmn.FileExists(nodeKeyFile) {
		logger.Info("Found node key", "path", nodeKeyFile)
		return nil
	}
	if _, err := p2p.LoadOrGenNodeKey(nodeKeyFile); err != nil {
		return err
	}
	logger.Info("Generated node key", "path", nodeKeyFile)
	return nil
}

func initGenesis(config *cfg.Config, pv *privval.FilePV, logger log.Logger) error {
	genFile := config.GenesisFile()
	if cmn.FileExists(genFile) {
		logger.Info("Found genesis file", "path", genFile)
		return nil
	}
	genDoc := tmtypes.GenesisDoc{
		GenesisTime:     tmtime.Now(),
		ChainID:         fmt.Sprintf("test-chain-%v", cmn.RandStr(6)),
		ConsensusParams: tmtypes.DefaultConsensusParams(),
	}
	genDoc.Validators = []tmtypes.GenesisValidator{{
		Address: pv.GetPubKey().Address(),
		PubKey:  pv.GetPubKey(),
		Power:   10,
	}}
	if err := genDoc.SaveAs(genFile); err != nil {
		return err
	}
	logger.Info("Generated genesis file", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}

	var doc GenesisDoc
	err = json.Unmarshal(bz, &doc)
	if err != nil {
		return err
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(filename, out, 0600)
}
