/*
Package preauth provides authentication middleware for transactions that
declare their caller conditions up front. The host environment settles
identity before a transaction reaches the chain, so no signatures are
verified here: the decorator validates the declared conditions and exposes
them to the handlers through x.Authenticator.
*/
package preauth

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// AuthorizedTx is implemented by transactions that carry the caller
// conditions the host authorized for this call.
type AuthorizedTx interface {
	alms.Tx
	GetPreauthConditions() [][]byte
}

// Decorator validates declared caller conditions and adds them to the
// context.
type Decorator struct {
	allowMissing bool
}

var _ alms.Decorator = Decorator{}

// NewDecorator returns an authentication decorator that requires every
// transaction to declare at least one caller condition.
func NewDecorator() Decorator {
	return Decorator{
		allowMissing: false,
	}
}

// AllowMissing allows transactions that declare no caller through.
func (d Decorator) AllowMissing() Decorator {
	d.allowMissing = true
	return d
}

// Check validates the declared callers before calling down the stack.
func (d Decorator) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Checker) (*alms.CheckResult, error) {
	atx, ok := tx.(AuthorizedTx)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	conds, err := d.conditions(atx)
	if err != nil {
		return nil, err
	}

	ctx = withPreauth(ctx, conds)
	return next.Check(ctx, store, tx)
}

// Deliver validates the declared callers before calling down the stack.
func (d Decorator) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Deliverer) (*alms.DeliverResult, error) {
	atx, ok := tx.(AuthorizedTx)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	conds, err := d.conditions(atx)
	if err != nil {
		return nil, err
	}

	ctx = withPreauth(ctx, conds)
	return next.Deliver(ctx, store, tx)
}

// conditions parses and validates the declared caller set.
func (d Decorator) conditions(tx AuthorizedTx) ([]alms.Condition, error) {
	raw := tx.GetPreauthConditions()
	if len(raw) == 0 && !d.allowMissing {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction declares no caller")
	}

	conds := make([]alms.Condition, len(raw))
	for i, b := range raw {
		c := alms.Condition(b)
		if err := c.Validate(); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "condition #%d is malformed", i)
		}
		conds[i] = c
	}
	return conds, nil
}
