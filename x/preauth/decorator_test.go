package preauth_test

import (
	"context"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
	"github.com/alms-io/alms/x"
	"github.com/alms-io/alms/x/preauth"
)

// authTx equips a test transaction with declared caller conditions.
type authTx struct {
	alms.Tx
	conditions [][]byte
}

var _ preauth.AuthorizedTx = (*authTx)(nil)

func (tx *authTx) GetPreauthConditions() [][]byte {
	return tx.conditions
}

// captureHandler records the callers visible through the authenticator.
type captureHandler struct {
	auth  x.Authenticator
	conds []alms.Condition
	calls int
}

var _ alms.Handler = (*captureHandler)(nil)

func (h *captureHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	h.conds = h.auth.GetConditions(ctx)
	h.calls++
	return &alms.CheckResult{}, nil
}

func (h *captureHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	h.conds = h.auth.GetConditions(ctx)
	h.calls++
	return &alms.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	alice := almstest.NewCondition()
	bob := almstest.NewCondition()

	cases := map[string]struct {
		dec       preauth.Decorator
		tx        alms.Tx
		wantErr   *errors.Error
		wantConds []alms.Condition
	}{
		"declared callers are exposed to the handler": {
			dec:       preauth.NewDecorator(),
			tx:        &authTx{Tx: &almstest.Tx{}, conditions: [][]byte{alice, bob}},
			wantConds: []alms.Condition{alice, bob},
		},
		"a transaction without any caller is rejected": {
			dec:     preauth.NewDecorator(),
			tx:      &authTx{Tx: &almstest.Tx{}},
			wantErr: errors.ErrUnauthorized,
		},
		"a transaction without any caller can be let through": {
			dec: preauth.NewDecorator().AllowMissing(),
			tx:  &authTx{Tx: &almstest.Tx{}},
		},
		"a malformed condition is rejected": {
			dec:     preauth.NewDecorator(),
			tx:      &authTx{Tx: &almstest.Tx{}, conditions: [][]byte{[]byte("garbage")}},
			wantErr: errors.ErrInput,
		},
		"a transaction that cannot declare callers passes through": {
			dec: preauth.NewDecorator(),
			tx:  &almstest.Tx{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := &captureHandler{auth: preauth.Authenticate{}}
			stack := almstest.Decorate(h, tc.dec)
			db := store.MemStore()
			ctx := context.Background()

			if _, err := stack.Check(ctx, db, tc.tx); !tc.wantErr.Is(err) {
				t.Fatalf("check returned unexpected error: %+v", err)
			}
			if _, err := stack.Deliver(ctx, db, tc.tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver returned unexpected error: %+v", err)
			}

			if tc.wantErr != nil {
				if h.calls != 0 {
					t.Fatalf("handler must not be called on a rejected transaction, got %d calls", h.calls)
				}
				return
			}
			if h.calls != 2 {
				t.Fatalf("want 2 handler calls, got %d", h.calls)
			}
			if len(h.conds) != len(tc.wantConds) {
				t.Fatalf("want %d conditions, got %v", len(tc.wantConds), h.conds)
			}
			for i := range tc.wantConds {
				if !tc.wantConds[i].Equals(h.conds[i]) {
					t.Fatalf("condition %d: want %q, got %q", i, tc.wantConds[i], h.conds[i])
				}
			}
		})
	}
}
