package registry

import (
	"bytes"
	"context"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/gconf"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/store"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []alms.Condition
		Tx         alms.Tx
		WantErr    *errors.Error
	}

	var (
		adminCond = almstest.NewCondition()
		aliceCond = almstest.NewCondition()
		bobCond   = almstest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db alms.KVStore)
	}{
		"anyone can register a beneficiary for their own address": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db alms.KVStore) {
				var bnf Beneficiary
				if err := NewBeneficiaryBucket().One(db, almstest.SequenceID(1), &bnf); err != nil {
					t.Fatalf("cannot get beneficiary: %s", err)
				}
				if !bnf.Address.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected address: %q", bnf.Address)
				}
				if bnf.Verified {
					t.Fatal("a fresh registration must not be verified")
				}
			},
		},
		"registration must be authorized by the registered address": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{bobCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"an address can be registered only once": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "shelter network",
						},
					},
					WantErr: errors.ErrDuplicate,
				},
			},
		},
		"a name can be registered only once": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []alms.Condition{bobCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  bobCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: errors.ErrDuplicate,
				},
			},
		},
		"admin can verify and revoke a beneficiary": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []alms.Condition{adminCond},
					Tx: &almstest.Tx{
						Msg: &VerifyBeneficiaryMsg{
							Metadata:      &alms.Metadata{Schema: 1},
							BeneficiaryID: almstest.SequenceID(1),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []alms.Condition{adminCond},
					Tx: &almstest.Tx{
						Msg: &RevokeBeneficiaryMsg{
							Metadata:      &alms.Metadata{Schema: 1},
							BeneficiaryID: almstest.SequenceID(1),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db alms.KVStore) {
				var bnf Beneficiary
				if err := NewBeneficiaryBucket().One(db, almstest.SequenceID(1), &bnf); err != nil {
					t.Fatalf("cannot get beneficiary: %s", err)
				}
				if bnf.Verified {
					t.Fatal("revoke must clear the verified mark")
				}
			},
		},
		"only admin can verify": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &RegisterBeneficiaryMsg{
							Metadata: &alms.Metadata{Schema: 1},
							Address:  aliceCond.Address(),
							Name:     "clean water initiative",
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []alms.Condition{aliceCond},
					Tx: &almstest.Tx{
						Msg: &VerifyBeneficiaryMsg{
							Metadata:      &alms.Metadata{Schema: 1},
							BeneficiaryID: almstest.SequenceID(1),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"verification of an unknown beneficiary fails": {
			Requests: []Request{
				{
					Conditions: []alms.Condition{adminCond},
					Tx: &almstest.Tx{
						Msg: &VerifyBeneficiaryMsg{
							Metadata:      &alms.Metadata{Schema: 1},
							BeneficiaryID: almstest.SequenceID(1),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "registry")

			rt := app.NewRouter()
			auth := &almstest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &alms.Metadata{Schema: 1},
				Admin:    adminCond.Address(),
			}
			if err := gconf.Save(db, "registry", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := auth.SetConditions(context.Background(), req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()

				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestKeeperIsVerified(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "registry")

	bucket := NewBeneficiaryBucket()
	addr := almstest.NewCondition().Address()
	bnf := Beneficiary{
		Metadata: &alms.Metadata{Schema: 1},
		Address:  addr,
		Name:     "unverified org",
	}
	key, err := bucket.Put(db, nil, &bnf)
	if err != nil {
		t.Fatalf("cannot store beneficiary: %s", err)
	}

	keeper := NewKeeper()

	if ok, err := keeper.IsVerified(db, addr); err != nil || ok {
		t.Fatalf("want (false, nil) for an unverified beneficiary, got (%v, %v)", ok, err)
	}

	bnf.Verified = true
	if _, err := bucket.Put(db, key, &bnf); err != nil {
		t.Fatalf("cannot update beneficiary: %s", err)
	}
	if ok, err := keeper.IsVerified(db, addr); err != nil || !ok {
		t.Fatalf("want (true, nil) for a verified beneficiary, got (%v, %v)", ok, err)
	}

	unknown := almstest.NewCondition().Address()
	if ok, err := keeper.IsVerified(db, unknown); err != nil || ok {
		t.Fatalf("want (false, nil) for an unknown beneficiary, got (%v, %v)", ok, err)
	}

	if !bytes.Equal(key, almstest.SequenceID(1)) {
		t.Fatalf("want the first sequence key, got %x", key)
	}
}
