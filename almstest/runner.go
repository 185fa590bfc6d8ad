package almstest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is implemented by both *testing.T and *testing.B. Use it instead of
// the pointer type to allow notation to accept both objects.
type Tester interface {
	Helper()
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// Runner provides a translation layer between an ABCI interface and an alms
// application. It takes care of serializing transactions and creating blocks.
type Runner struct {
	chainID string
	height  int64
	t       Tester
	app     abci.Application
}

// NewRunner creates a Runner instance that can be used to process deliver
// and check transaction requests using the alms API. This runner expects all
// operations to succeed. Any error results in test failure.
func NewRunner(t Tester, app abci.Application, chainID string) *Runner {
	return &Runner{
		chainID: chainID,
		height:  0,
		t:       t,
		app:     app,
	}
}

// App is the minimal alms application interface required by the Runner to
// be able to connect ABCI and alms APIs together. Standard queries are
// served through the read only store interface.
type App interface {
	DeliverTx(alms.Tx) error
	CheckTx(alms.Tx) error
	alms.ReadOnlyKVStore
}

var _ App = (*Runner)(nil)

// InitChain serializes to JSON given genesis and loads it. Loading a genesis
// is causing a block creation.
func (r *Runner) InitChain(genesis interface{}) {
	raw, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		r.t.Fatalf("cannot JSON serialize genesis: %s", err)
	}

	// Load the genesis in a separate block.
	changed := r.InBlock(func(App) error {
		r.app.InitChain(abci.RequestInitChain{
			Time:          time.Now(),
			ChainId:       r.chainID,
			AppStateBytes: raw,
		})
		return nil
	})

	if !changed {
		r.t.Fatalf("genesis did not change the state")
	}
}

// CheckTx translates given alms transaction into ABCI interface and executes.
func (r *Runner) CheckTx(tx alms.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := r.app.CheckTx(raw); resp.Code != 0 {
		return fmt.Errorf("%d: %s", resp.Code, resp.Log)
	}
	return nil
}

// DeliverTx translates given alms transaction into ABCI interface and
// executes.
func (r *Runner) DeliverTx(tx alms.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := r.app.DeliverTx(raw); resp.Code != 0 {
		return fmt.Errorf("%d: %s", resp.Code, resp.Log)
	}
	return nil
}

// InBlock begins a block and runs given function. All transactions executed
// within given function are part of the newly created block. Upon success the
// block is finished and changes committed.
// InBlock returns true if the application state was modified.
//
// Any failure is ending the test instantly.
func (r *Runner) InBlock(executeTx func(App) error) bool {
	r.t.Helper()
	return r.InBlockAt(time.Now(), executeTx)
}

// InBlockAt is the same as InBlock but the created block header declares
// given time. Use it to test functionality that depends on the block time,
// for example expiration.
func (r *Runner) InBlockAt(blockTime time.Time, executeTx func(App) error) bool {
	r.t.Helper()

	r.height++

	initialHash := r.app.Info(abci.RequestInfo{}).LastBlockAppHash

	// BeginBlock will panic on error.
	r.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: r.chainID,
			Height:  r.height,
			Time:    blockTime,
		},
	})

	if err := executeTx(r); err != nil {
		r.t.Fatalf("operation failed with %+v", err)
	}

	r.app.EndBlock(abci.RequestEndBlock{
		Height: r.height,
	})

	// Commit data contains the new app hash. It differs from the initial
	// hash only if the state was modified.
	finalHash := r.app.Commit().Data
	return !bytes.Equal(initialHash, finalHash)
}

var _ alms.ReadOnlyKVStore = (*Runner)(nil)

func (r *Runner) Get(key []byte) ([]byte, error) {
	query := r.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed: %s", query.Log)
	}
	var value app.ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}

	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

func (r *Runner) Has(key []byte) (bool, error) {
	value, err := r.Get(key)
	if err != nil {
		return false, err
	}
	return len(value) > 0, nil
}

func (r *Runner) Iterator(start, end []byte) (alms.Iterator, error) {
	// A query over the ABCI interface can express only a prefix scan over
	// everything. This is enough for the tests that inspect the whole
	// application state.
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrHuman, "iterator only implemented for the entire range")
	}

	query := r.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed: %s", query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}

	return store.NewSliceIterator(models), nil
}

func (r *Runner) ReverseIterator(start, end []byte) (alms.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "not implemented")
}

func toModels(keys []byte, values []byte) ([]alms.Model, error) {
	var k, v app.ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot parse keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}
	return app.JoinResults(&k, &v)
}
