package reward

import (
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/store"
)

func TestCreditMintsAtConfiguredRate(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "reward")
	saveConf(t, db, &alms.Fraction{Numerator: 1, Denominator: 2})

	ctrl := NewController()
	donor := almstest.NewCondition().Address()

	// Half a token per unit, so five units mint two and a half tokens.
	if err := ctrl.Credit(db, donor, 5); err != nil {
		t.Fatalf("cannot credit: %s", err)
	}
	assertBalance(t, db, ctrl, donor, coin.NewCoin(2, coin.FracUnit/2, "GIV"))

	// Crediting an existing account accumulates.
	if err := ctrl.Credit(db, donor, 5); err != nil {
		t.Fatalf("cannot credit: %s", err)
	}
	assertBalance(t, db, ctrl, donor, coin.NewCoin(5, 0, "GIV"))
}

func TestCreditZeroRateIsDisabled(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "reward")
	saveConf(t, db, &alms.Fraction{Numerator: 0, Denominator: 1})

	ctrl := NewController()
	donor := almstest.NewCondition().Address()

	if err := ctrl.Credit(db, donor, 1000); err != nil {
		t.Fatalf("a zero rate credit must be a noop, got %+v", err)
	}

	// No reward account must be created for a zero mint.
	var rwd Reward
	if err := NewRewardBucket().One(db, donor, &rwd); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want no reward account, got %+v", err)
	}
}

func TestCreditRequiresPositiveUnits(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "reward")
	saveConf(t, db, &alms.Fraction{Numerator: 1, Denominator: 1})

	ctrl := NewController()
	donor := almstest.NewCondition().Address()

	for _, units := range []int64{0, -1} {
		if err := ctrl.Credit(db, donor, units); !errors.ErrAmount.Is(err) {
			t.Fatalf("crediting %d units must fail with an amount error, got %+v", units, err)
		}
	}
}

func TestCreditWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "reward")

	ctrl := NewController()
	donor := almstest.NewCondition().Address()

	if err := ctrl.Credit(db, donor, 1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("crediting without a configuration must fail, got %+v", err)
	}
}

func TestBalanceOfUnknownDonorIsZero(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "reward")

	ctrl := NewController()

	balance, err := ctrl.Balance(db, almstest.NewCondition().Address())
	if err != nil {
		t.Fatalf("cannot get balance: %s", err)
	}
	if !balance.IsZero() {
		t.Fatalf("want a zero balance, got %q", balance)
	}
}

func saveConf(t testing.TB, db gconf.Store, rate *alms.Fraction) {
	t.Helper()

	conf := Configuration{
		Metadata: &alms.Metadata{Schema: 1},
		Admin:    almstest.NewCondition().Address(),
		Ticker:   "GIV",
		Rate:     rate,
	}
	if err := gconf.Save(db, "reward", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
}

func assertBalance(t testing.TB, db alms.ReadOnlyKVStore, ctrl Controller, donor alms.Address, want coin.Coin) {
	t.Helper()

	balance, err := ctrl.Balance(db, donor)
	if err != nil {
		t.Fatalf("cannot get balance: %s", err)
	}
	if !balance.Equals(want) {
		t.Fatalf("want %q balance, got %q", want, balance)
	}
}
