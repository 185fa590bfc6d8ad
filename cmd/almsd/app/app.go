/*
Package almsd links together all the various components
to construct the almsd app.
*/
package almsd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
	"github.com/alms-io/alms/store/iavl"
	"github.com/alms-io/alms/x"
	"github.com/alms-io/alms/x/batch"
	"github.com/alms-io/alms/x/fund"
	"github.com/alms-io/alms/x/preauth"
	"github.com/alms-io/alms/x/registry"
	"github.com/alms-io/alms/x/reward"
	"github.com/alms-io/alms/x/utils"
)

// Authenticator returns the authentication used by the application. Callers
// declare their conditions on the transaction envelope and the preauth
// decorator validates them.
func Authenticator() x.Authenticator {
	return preauth.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		preauth.NewDecorator(),
		batch.NewDecorator(),
		utils.NewActionTagger(),
		// make sure each message of a batch is self-contained
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router, dispatching to the fund and the
// registry extensions.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	fund.RegisterRoutes(r, authFn, registry.NewKeeper(), reward.NewController())
	registry.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router, allowing access to the fund,
// registry, reward and migration state.
func QueryRouter() alms.QueryRouter {
	r := alms.NewQueryRouter()
	r.RegisterAll(
		fund.RegisterQuery,
		registry.RegisterQuery,
		reward.RegisterQuery,
		migration.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() alms.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// CronStack returns the ticker invoked at every block boundary. It drives
// the fund cycle lifecycle independent of any transaction traffic.
func CronStack() alms.Ticker {
	return fund.NewCycleTicker()
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h alms.Handler,
	tx alms.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, CronStack(), debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (alms.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
