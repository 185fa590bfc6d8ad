package utils

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ alms.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Checker) (_ *alms.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx, next alms.Deliverer) (_ *alms.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
