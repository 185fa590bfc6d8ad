package app_test

import (
	"testing"

	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/errors"
)

func TestRouter(t *testing.T) {
	r := app.NewRouter()

	handler := &almstest.Handler{}
	r.Handle("test/good", handler)

	// Registering the same path twice as well as an invalid path must
	// fail early.
	assert.Panics(t, func() { r.Handle("test/good", handler) })
	assert.Panics(t, func() { r.Handle("l:7", handler) })

	tx := &almstest.Tx{Msg: &almstest.Msg{RoutePath: "test/good"}}
	if _, err := r.Check(nil, nil, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := app.NewRouter()

	tx := &almstest.Tx{Msg: &almstest.Msg{RoutePath: "test/secret"}}
	if _, err := r.Check(nil, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %+v", err)
	}
}

func TestRouterBrokenTx(t *testing.T) {
	r := app.NewRouter()

	handler := &almstest.Handler{}
	r.Handle("test/good", handler)

	tx := &almstest.Tx{Err: errors.ErrInput}
	if _, err := r.Check(nil, nil, tx); !errors.ErrInput.Is(err) {
		t.Fatalf("expected input error, got %+v", err)
	}
	assert.Equal(t, 0, handler.CallCount())
}
