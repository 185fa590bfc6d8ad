package preauth

import (
	"context"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/x"
)

type contextKey int // local to the preauth module

const (
	contextKeyPreauth contextKey = iota
)

// withPreauth is a private method, as only this module can authorize a
// caller.
func withPreauth(ctx alms.Context, conds []alms.Condition) alms.Context {
	return context.WithValue(ctx, contextKeyPreauth, conds)
}

// Authenticate implements x.Authenticator backed by the conditions the
// decorator stored in the context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the callers declared for the current context.
// May be empty.
func (a Authenticate) GetConditions(ctx alms.Context) []alms.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyPreauth).([]alms.Condition)
	return val
}

// HasAddress returns true if any declared caller matches the address.
func (a Authenticate) HasAddress(ctx alms.Context, addr alms.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
