package alms

import (
	"encoding/json"

	"github.com/alms-io/alms/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction. It is its own
// interface to allow better type controls in the next arguments in
// Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Handler is a permanent handler for a transaction stream.
type Handler interface {
	Checker
	Deliverer
}

// Decorator wraps a Handler to provide common functionality (authentication,
// logging, transaction boundaries), web-server middleware style.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler, the setup side of a
// Router.
type Registry interface {
	// Handle assigns the given handler to handle all messages routed to
	// the given path.
	Handle(path string, h Handler)
}

// Options are the app options. Each extension can look up its key and parse
// the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key and parses the json
// into the given obj.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "option %q: %s", key, err)
	}
	return nil
}

// GenesisParams represents parameters set in the genesis document that are
// not part of the application options.
type GenesisParams struct {
	Validators []abci.ValidatorUpdate
}

// FromInitChain extracts the genesis parameters from the init chain request.
func FromInitChain(req abci.RequestInitChain) GenesisParams {
	return GenesisParams{
		Validators: req.Validators,
	}
}

// Initializer implementations are used to initialize the database apps from
// the genesis file contents.
type Initializer interface {
	FromGenesis(opts Options, params GenesisParams, kv KVStore) error
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts Options, params GenesisParams, kv KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}
