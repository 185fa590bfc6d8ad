package almsd

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/x/fund"
	"github.com/alms-io/alms/x/registry"
	"github.com/alms-io/alms/x/reward"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one admin condition,
// to use for dev mode
//
// You can set the ticker as the first argument and the hex encoded admin
// address as the second one.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "ALM"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr alms.Address
	if len(args) > 1 {
		if err := addr.UnmarshalJSON([]byte(`"` + args[1] + `"`)); err != nil {
			return nil, err
		}
	} else {
		// if no address provided, generate a fresh admin condition and
		// print it out so transactions can declare it
		cond := GenerateAdminCondition()
		fmt.Printf("admin condition: %s\n", cond)
		addr = cond.Address()
	}

	type dict map[string]interface{}
	opts := dict{
		"conf": dict{
			"migration": dict{
				"admin": addr,
			},
			"fund": dict{
				"owner":          addr,
				"trusted_source": addr,
				"ticker":         ticker,
				"cycle_duration": "168h",
				"issuance":       "1/1",
				"vote_weight":    "7/10",
				"impact_weight":  "3/10",
			},
			"registry": dict{
				"admin": addr,
			},
			"reward": dict{
				"admin":  addr,
				"ticker": "RWD",
				"rate":   "1/10",
			},
		},
		"initialize_schema": []string{"fund", "registry", "reward"},
		"registry": dict{
			"beneficiaries": []dict{},
		},
	}
	return json.Marshal(opts)
}

// GenerateAdminCondition returns a random condition that can be declared on
// a transaction envelope to authorize administrative messages.
func GenerateAdminCondition() alms.Condition {
	return alms.NewCondition("preauth", "seed", cmn.RandBytes(8))
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "alms.db")
	}

	stack := Stack()
	application, err := Application("almsd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}

	return DecorateApp(application, logger), nil
}

// DecorateApp adds initializers and Logger to app (for formatting and
// extending state)
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(alms.ChainInitializers(
		&migration.Initializer{},
		&fund.Initializer{},
		&registry.Initializer{},
		&reward.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

// InlineApp will take a previously prepared CommitStore and return a
// complete app
func InlineApp(kv alms.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	stack := Stack()
	ctx := context.Background()
	store := app.NewStoreApp("almsd", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, stack, CronStack(), debug)
	return DecorateApp(base, logger)
}
