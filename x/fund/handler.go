package fund

import (
	"fmt"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/x"
)

const (
	contributeCost   = 100
	voteCost         = 100
	submitImpactCost = 100
	closeCycleCost   = 50
	distributeCost   = 500
)

// RegistryKeeper decides whether an address belongs to a verified
// beneficiary. Implemented by the registry extension.
type RegistryKeeper interface {
	IsVerified(db alms.ReadOnlyKVStore, address alms.Address) (bool, error)
}

// Rewarder credits donors with reward tokens for their contributions.
// Implemented by the reward extension.
type Rewarder interface {
	Credit(db alms.KVStore, donor alms.Address, units int64) error
}

func RegisterQuery(qr alms.QueryRouter) {
	NewCycleBucket().Register("cycles", qr)
	NewDonorBucket().Register("donors", qr)
	NewVoteBucket().Register("votes", qr)
	NewTallyBucket().Register("tallies", qr)
	NewImpactBucket().Register("impacts", qr)
	NewPayoutBucket().Register("payouts", qr)
	qr.Register("/cycles/current", currentCycleQuery{})
}

func RegisterRoutes(r alms.Registry, auth x.Authenticator, registry RegistryKeeper, rewarder Rewarder) {
	r = migration.SchemaMigratingRegistry("fund", r)

	ctrl := NewController()

	r.Handle("fund/contribute", &contributeHandler{
		auth:     auth,
		ctrl:     ctrl,
		rewarder: rewarder,
	})
	r.Handle("fund/vote", &voteHandler{
		auth:     auth,
		ctrl:     ctrl,
		registry: registry,
	})
	r.Handle("fund/submit_impact", &submitImpactHandler{
		auth:     auth,
		ctrl:     ctrl,
		registry: registry,
	})
	r.Handle("fund/close_cycle", &closeCycleHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle("fund/distribute", &distributeHandler{
		ctrl: ctrl,
	})
	r.Handle("fund/update_configuration", gconf.NewUpdateConfigurationHandler(
		"fund", &Configuration{}, auth, nil))
}

type contributeHandler struct {
	auth     x.Authenticator
	ctrl     *Controller
	rewarder Rewarder
}

func (h *contributeHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: contributeCost}, nil
}

func (h *contributeHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, donor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}
	cycleID, err := h.ctrl.Contribute(db, donor, msg.Amount.Whole, conf)
	if err != nil {
		return nil, err
	}
	// Reward crediting must never fail a contribution. A misconfigured
	// reward extension only costs the donor the bonus tokens.
	if err := h.rewarder.Credit(db, donor, msg.Amount.Whole); err != nil {
		alms.GetLogger(ctx).Error("cannot credit contribution reward",
			"donor", donor, "err", err)
	}
	return &alms.DeliverResult{Data: cycleKey(cycleID)}, nil
}

func (h *contributeHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*ContributeMsg, alms.Address, error) {
	var msg ContributeMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	donor := x.MainSigner(ctx, h.auth)
	if donor == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "contribution must be signed")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load conf")
	}
	if msg.Amount.Ticker != conf.Ticker {
		return nil, nil, errors.Wrapf(ErrInvalidAmount, "fund accepts only %q", conf.Ticker)
	}
	return &msg, donor.Address(), nil
}

type voteHandler struct {
	auth     x.Authenticator
	ctrl     *Controller
	registry RegistryKeeper
}

func (h *voteHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: voteCost}, nil
}

func (h *voteHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, donor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	cycleID, err := h.ctrl.Vote(db, donor, msg.Beneficiary, msg.Power)
	if err != nil {
		return nil, err
	}
	return &alms.DeliverResult{Data: cycleKey(cycleID)}, nil
}

func (h *voteHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*VoteMsg, alms.Address, error) {
	var msg VoteMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	donor := x.MainSigner(ctx, h.auth)
	if donor == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "vote must be signed")
	}
	switch ok, err := h.registry.IsVerified(db, msg.Beneficiary); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "registry lookup")
	case !ok:
		return nil, nil, errors.Wrapf(ErrUnknownBeneficiary, "%s", msg.Beneficiary)
	}
	return &msg, donor.Address(), nil
}

type submitImpactHandler struct {
	auth     x.Authenticator
	ctrl     *Controller
	registry RegistryKeeper
}

func (h *submitImpactHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: submitImpactCost}, nil
}

func (h *submitImpactHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, source, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SubmitImpact(db, msg.CycleID, msg.Beneficiary, msg.Score, source); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{Data: beneficiaryKey(msg.CycleID, msg.Beneficiary)}, nil
}

func (h *submitImpactHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*SubmitImpactMsg, alms.Address, error) {
	var msg SubmitImpactMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load conf")
	}
	if !h.auth.HasAddress(ctx, conf.TrustedSource) {
		return nil, nil, errors.Wrap(ErrUntrustedSource, "impact scores require the trusted source signature")
	}
	switch ok, err := h.registry.IsVerified(db, msg.Beneficiary); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "registry lookup")
	case !ok:
		return nil, nil, errors.Wrapf(ErrUnknownBeneficiary, "%s", msg.Beneficiary)
	}
	return &msg, conf.TrustedSource, nil
}

type closeCycleHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *closeCycleHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: closeCycleCost}, nil
}

func (h *closeCycleHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	blockTime, err := alms.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	cycle, closed, err := h.ctrl.CloseCycle(db, msg.CycleID, alms.AsUnixTime(blockTime))
	if err != nil {
		return nil, err
	}
	res := alms.DeliverResult{Data: cycleKey(msg.CycleID)}
	if !closed {
		// Closing a cycle that already left the Open phase is a safe
		// no-op, reported instead of failed.
		res.Log = fmt.Sprintf("cycle %d already %s", msg.CycleID, cycle.Phase)
	}
	return &res, nil
}

func (h *closeCycleHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*CloseCycleMsg, error) {
	var msg CloseCycleMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}
	// The owner can force an early close. Everyone else has to wait for
	// the deadline, then anyone can crank the transition.
	if h.auth.HasAddress(ctx, conf.Owner) {
		return &msg, nil
	}
	cycle, err := h.ctrl.CycleByID(db, msg.CycleID)
	if err != nil {
		return nil, err
	}
	blockTime, err := alms.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if alms.AsUnixTime(blockTime) < cycle.ClosesAt {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can close before the deadline")
	}
	return &msg, nil
}

type distributeHandler struct {
	ctrl *Controller
}

func (h *distributeHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: distributeCost}, nil
}

func (h *distributeHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "load conf")
	}
	blockTime, err := alms.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if _, err := h.ctrl.Distribute(db, msg.CycleID, alms.AsUnixTime(blockTime), conf); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{Data: cycleKey(msg.CycleID)}, nil
}

func (h *distributeHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

// currentCycleQuery resolves the cycle that is currently accepting
// activity without the client knowing its sequence number.
type currentCycleQuery struct{}

func (currentCycleQuery) Query(db alms.ReadOnlyKVStore, mod string, data []byte) ([]alms.Model, error) {
	key, raw, err := latestInPrefix(db, []byte(cycleBucketName+":"))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []alms.Model{
		{
			Key:   append([]byte(cycleBucketName+":"), key...),
			Value: raw,
		},
	}, nil
}
