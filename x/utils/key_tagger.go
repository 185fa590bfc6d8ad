package utils

import (
	"encoding/hex"
	"strings"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/store"
	"github.com/tendermint/tendermint/libs/common"
)

// KeyTagger is a decorator that records all Set/Delete
// operations performed by its children and adds all those keys
// as DeliverTx tags.
//
// Tag keys are hex-encoded so that the clients can subscribe to
// changes of any ledger entry, for example a donor account or a
// cycle record, without parsing binary data.
type KeyTagger struct{}

var _ alms.Decorator = KeyTagger{}

// NewKeyTagger creates a KeyTagger decorator
func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

// Check does nothing
func (KeyTagger) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx, next alms.Checker) (*alms.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver passes in a recording KVStore into the child and
// uses that to calculate tags to add to DeliverResult
func (KeyTagger) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx, next alms.Deliverer) (*alms.DeliverResult, error) {
	record := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, record, tx)
	if err != nil {
		return nil, err
	}

	res.Tags = append(res.Tags, kvPairs(record)...)
	return res, nil
}

var (
	recordSet    = []byte("s")
	recordDelete = []byte("d")
)

// kvPairs will get the kvpairs from an underlying store if possible
// use this, so we can use interface for recordingStore
func kvPairs(db alms.KVStore) common.KVPairs {
	r, ok := db.(store.Recorder)
	if !ok {
		return nil
	}
	return changesToTags(r.KVPairs())
}

//----- helpers ---

func changesToTags(changes map[string][]byte) common.KVPairs {
	l := len(changes)
	if l == 0 {
		return nil
	}
	res := make(common.KVPairs, 0, l)
	for k, v := range changes {
		tag := recordSet
		if v == nil {
			tag = recordDelete
		}
		pair := common.KVPair{
			Key:   []byte(strings.ToUpper(hex.EncodeToString([]byte(k)))),
			Value: tag,
		}
		res = append(res, pair)
	}
	res.Sort()
	return res
}
