package app_test

import (
	"context"
	"testing"

	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/app"
	"github.com/alms-io/alms/errors"
)

func TestChain(t *testing.T) {
	c1 := &almstest.Decorator{}
	c2 := &almstest.Decorator{}
	c3 := &almstest.Decorator{}
	h := &almstest.Handler{}

	// Typed nil decorators must be cut off the same way untyped ones are.
	var hole *almstest.Decorator
	stack := app.ChainDecorators(c1, nil, c2, hole).Chain(c3).WithHandler(h)

	bg := context.Background()
	if _, err := stack.Check(bg, nil, nil); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := stack.Deliver(bg, nil, nil); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbortsOnError(t *testing.T) {
	c1 := &almstest.Decorator{}
	c2 := &almstest.Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	h := &almstest.Handler{}

	stack := app.ChainDecorators(c1, c2).WithHandler(h)

	bg := context.Background()
	if _, err := stack.Check(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("expected unauthorized error, got %+v", err)
	}
	if _, err := stack.Deliver(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("expected unauthorized error, got %+v", err)
	}

	// The failing decorator must stop the execution before the handler.
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 0, h.CallCount())
}
