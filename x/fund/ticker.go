package fund

import (
	"fmt"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// CycleTicker drives the cycle lifecycle from the block clock. It opens
// the first cycle once the fund is configured and closes the current one
// as soon as the block time reaches its deadline. Distribution is not
// automatic, it stays an explicit transaction.
type CycleTicker struct {
	ctrl *Controller
}

func NewCycleTicker() *CycleTicker {
	return &CycleTicker{ctrl: NewController()}
}

var _ alms.Ticker = (*CycleTicker)(nil)

// Tick implements alms.Ticker interface.
//
// All changes are done atomically and apply only on success. A failed run
// discards its writes and logs the failure, leaving the cycle to be
// retried on the next block.
func (t *CycleTicker) Tick(ctx alms.Context, db alms.CacheableKVStore) alms.TickResult {
	cache := db.CacheWrap()
	res, err := t.tick(ctx, cache)
	if err != nil {
		cache.Discard()
		alms.GetLogger(ctx).Error("fund cycle tick failed", "err", err)
		return alms.TickResult{}
	}
	if err := cache.Write(); err != nil {
		alms.GetLogger(ctx).Error("fund cycle tick failed", "err", err)
		return alms.TickResult{}
	}
	return res
}

func (t *CycleTicker) tick(ctx alms.Context, db alms.KVStore) (alms.TickResult, error) {
	var res alms.TickResult

	conf, err := loadConf(db)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			// Fund is not configured on this chain.
			return res, nil
		}
		return res, errors.Wrap(err, "load configuration")
	}

	blockTime, err := alms.BlockTime(ctx)
	if err != nil {
		return res, errors.Wrap(err, "block time")
	}
	now := alms.AsUnixTime(blockTime)

	cycleID, cycle, err := t.ctrl.CurrentCycle(db)
	switch {
	case err == nil:
		// Cycle exists already.
	case errors.ErrNotFound.Is(err):
		cycleID, _, err := t.ctrl.OpenCycle(db, now, conf.CycleDuration, 0)
		if err != nil {
			return res, errors.Wrap(err, "open first cycle")
		}
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte("fund:cycle"),
			Value: []byte(fmt.Sprintf("open:%d", cycleID)),
		})
		return res, nil
	default:
		return res, errors.Wrap(err, "current cycle")
	}

	if cycle.Phase == PhaseOpen && now >= cycle.ClosesAt {
		if _, _, err := t.ctrl.CloseCycle(db, cycleID, now); err != nil {
			return res, errors.Wrapf(err, "close cycle %d", cycleID)
		}
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte("fund:cycle"),
			Value: []byte(fmt.Sprintf("close:%d", cycleID)),
		})
	}
	return res, nil
}
