package alms

import "fmt"

// Model groups a set of key value pairs returned from a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair.
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}

const (
	// KeyQueryMod means to query for exact match (key).
	KeyQueryMod = ""
	// PrefixQueryMod means to query for anything with this prefix.
	PrefixQueryMod = "prefix"
)

// QueryHandler is anything that can process ABCI queries.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter allows us to register many query handlers to be searched by
// path prefix.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter, the setup side of query
// dispatch.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterAll registers a number of RegisterQuery functions at once.
func (r QueryRouter) RegisterAll(qr ...func(QueryRouter)) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a handler for the given path. Panics on duplicate paths,
// which signals a wiring error that must be fixed before launch.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path, or nil if none.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
