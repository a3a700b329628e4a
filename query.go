package cattery

import (
	"fmt"
	"sort"
	"strings"
)

// Query modifiers understood by the query handlers. A modifier follows
// the path after a "?", as in "/kitties?prefix".
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key and value returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries for one path. The meaning of data
// depends on the modifier.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of an extension to the router.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths, such as "/kitties", to their handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register with this router.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, register := range qr {
		register(r)
	}
}

// Register binds the handler to the path. It panics when the path does
// not start with "/", contains a modifier or is already taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "?") {
		panic(fmt.Sprintf("invalid query path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler bound to the path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// Paths returns all registered paths in order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
