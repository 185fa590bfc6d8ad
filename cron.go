package alms

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Ticker is an interface used to call background tasks scheduled for
// execution.
type Ticker interface {
	// Tick is a method called at the beginning of the block. It should be
	// used to execute any scheduled tasks.
	//
	// Because beginning of the block does not allow for an error response
	// this method does not return one as well. It is the implementation
	// responsibility to handle all error situations.
	// In case of an error that is an instance specific (ie database
	// issues) it might be neccessary for the method to terminate (ie
	// panic). An instance specific issue means that all other nodes most
	// likely succeeded processing the task and have different state than
	// this instance. This means that this node is out of sync with the
	// rest of the network and cannot continue operating as its state is
	// invalid.
	Tick(ctx Context, store CacheableKVStore) TickResult
}

// TickResult represents the result of a single tick run.
type TickResult struct {
	// Tags contains a list of tags that were produced during a single tick
	// execution. They should be included in the block that this tick
	// result was produced.
	// Empty tag list is a valid result.
	Tags []common.KVPair

	// Diff contains a list of validator update operations produced during
	// a single tick execution. They should be included in the block that
	// this tick result was produced.
	// Empty validator update list is a valid result.
	Diff []ValidatorUpdate
}
