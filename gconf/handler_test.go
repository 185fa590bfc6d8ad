package gconf

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/store"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	cond := almstest.NewCondition()
	adminCond := almstest.NewCondition()

	cases := map[string]struct {
		// If Init is provided, initialize the database before running
		// handler code. This should represent the configuration's
		// initial state. Use nil to not provide initial state.
		Init ValidMarshaler

		// InitAdmin is passed to the handler to authenticate the
		// creation of a configuration that does not exist yet.
		InitAdmin func(alms.ReadOnlyKVStore) (alms.Address, error)

		Msg            alms.Msg
		MsgConditions  []alms.Condition
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error

		// When not nil database state will be tested to contain the
		// exact version of the configuration.
		WantConfig *myconfig
	}{
		"success": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   333,
					Str:   "boing!",
					Cn:    coin.NewCoin(4, 4, "XYZ"),
				},
			},
			MsgConditions: []alms.Condition{cond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   333,
				Str:   "boing!",
				Cn:    coin.NewCoin(4, 4, "XYZ"),
			},
		},
		"pointer fields survive the check and deliver sequence": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
				Frac:  &alms.Fraction{Numerator: 1, Denominator: 1},
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Frac:  &alms.Fraction{Numerator: 2, Denominator: 1},
				},
			},
			MsgConditions: []alms.Condition{cond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
				Frac:  &alms.Fraction{Numerator: 2, Denominator: 1},
			},
		},
		"message must be signed by the configuration owner": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
			},
			MsgConditions: []alms.Condition{
				// A random condition - for sure not the same as the Owner.
				almstest.NewCondition(),
			},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"zero values are not updating the configuration": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   0,
					Str:   "",
					Cn:    coin.NewCoin(0, 4, "ALM"),
				},
			},
			MsgConditions: []alms.Condition{cond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(0, 4, "ALM"),
			},
		},
		"invalid configuration is not accepted": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Cn:    coin.NewCoin(10, 409, "ALM"),
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   123,
					Str:   "foo",
					Cn:    coin.NewCoin(4, 0, ""), // Missing Ticker.
				},
			},
			MsgConditions:  []alms.Condition{cond},
			WantCheckErr:   errors.ErrCurrency,
			WantDeliverErr: errors.ErrCurrency,
		},
		"missing configuration can be created by the init admin": {
			Init: nil,
			InitAdmin: func(alms.ReadOnlyKVStore) (alms.Address, error) {
				return adminCond.Address(), nil
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   9,
					Str:   "genesis of a genesis",
					Cn:    coin.NewCoin(1, 2, "ALM"),
				},
			},
			MsgConditions: []alms.Condition{adminCond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   9,
				Str:   "genesis of a genesis",
				Cn:    coin.NewCoin(1, 2, "ALM"),
			},
		},
		"missing configuration cannot be created without an init admin": {
			Init:      nil,
			InitAdmin: nil,
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   9,
					Str:   "too soon",
					Cn:    coin.NewCoin(1, 2, "ALM"),
				},
			},
			MsgConditions:  []alms.Condition{cond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			if tc.Init != nil {
				if err := Save(db, "mypkg", tc.Init); err != nil {
					t.Fatalf("cannot save initial configuration: %s", err)
				}
			}

			var c myconfig
			auth := &almstest.CtxAuth{Key: "auth"}
			handler := NewUpdateConfigurationHandler("mypkg", &c, auth, tc.InitAdmin)

			ctx := alms.WithHeight(context.Background(), 999)
			ctx = alms.WithChainID(ctx, "mychain-123")
			ctx = auth.SetConditions(ctx, tc.MsgConditions...)

			tx := &almstest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := handler.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatal(err)
			}
			cache.Discard()

			if _, err := handler.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatal(err)
			}

			if tc.WantConfig != nil {
				var got myconfig
				if err := Load(db, "mypkg", &got); err != nil {
					t.Fatalf("cannot load configuration from the database: %s", err)
				}
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}

type myconfig struct {
	Owner alms.Address
	Num   int64
	Str   string
	Cn    coin.Coin
	Frac  *alms.Fraction
}

func (c *myconfig) GetOwner() alms.Address     { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := c.Cn.Validate(); err != nil {
		return errors.Wrap(err, "coin")
	}
	return nil
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ alms.Msg = (*myconfigMsg)(nil)

func (msg *myconfigMsg) Marshal() ([]byte, error)   { return json.Marshal(msg) }
func (msg *myconfigMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &msg) }
func (msg *myconfigMsg) Path() string               { return "myconfig" }
func (msg *myconfigMsg) Validate() error            { return msg.Patch.Validate() }
