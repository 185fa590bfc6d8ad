package app

import (
	"fmt"
	"regexp"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]alms.Handler
}

var _ alms.Registry = (*Router)(nil)
var _ alms.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]alms.Handler),
	}
}

// pathPattern describes an allowed format of a registration path.
var pathPattern = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`)

// Handle implements Registry interface.
func (r *Router) Handle(path string, h alms.Handler) {
	if !pathPattern.MatchString(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message path. If no
// handler was registered for this path, a handler that always fails with
// "not found" error is returned.
func (r *Router) handler(m alms.Msg) alms.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return &notFoundHandler{path: path}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the arguments.
type notFoundHandler struct {
	path string
}

var _ alms.Handler = (*notFoundHandler)(nil)

func (h *notFoundHandler) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h *notFoundHandler) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
