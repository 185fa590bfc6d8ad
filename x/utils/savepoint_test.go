package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/store"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	// a default error if desired
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    alms.Decorator // decorator at savepoint
		handler alms.Handler
		check   bool // whether to call Check or Deliver
		isError bool // true iff we expect errors

		written [][]byte // keys to find
		missing [][]byte // keys not to find
	}{
		"savepoint deactivated, returns error, both written": {
			save:    NewSavepoint(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok, nk},
		},
		"savepoint activated, returns error, one written": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint activated for deliver, returns error, one written": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double-activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint check doesn't affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			isError: true,
			written: [][]byte{ok, nk},
		},
		"savepoint activated, success, both written": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: nk, value: nv},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			if err := kv.Set(ok, ov); err != nil {
				t.Fatalf("cannot set %q: %s", ok, err)
			}

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}

			if tc.isError {
				if err == nil {
					t.Fatal("expected an error")
				}
			} else {
				assert.Nil(t, err)
			}

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				if !has {
					t.Errorf("missing key: %X", k)
				}
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				if has {
					t.Errorf("unexpected key: %X", k)
				}
			}
		})
	}
}

// writeHandler writes the key, value pair on every call and returns the
// configured error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ alms.Handler = writeHandler{}

func (h writeHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &alms.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{}, h.err
}
