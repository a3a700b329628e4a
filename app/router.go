package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
//
// TODO: look for better trie routers that handle patterns,
// maybe take one from an existing http router
type Router struct {
	routes map[string]cattery.Handler
}

var _ cattery.Registry = (*Router)(nil)
var _ cattery.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]cattery.Handler, 10),
	}
}

// Handle adds a new Handler for the path of given message.
// panics if another Handler was already registered or the path is
// not valid.
func (r *Router) Handle(msg cattery.Msg, h cattery.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler.
func (r *Router) handler(path string) cattery.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	path, err := msgPath(tx)
	if err != nil {
		return nil, err
	}
	return r.handler(path).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	path, err := msgPath(tx)
	if err != nil {
		return nil, err
	}
	return r.handler(path).Deliver(ctx, db, tx)
}

func msgPath(tx cattery.Tx) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return "", errors.Wrap(errors.ErrMsg, "transaction without a message")
	}
	return msg.Path(), nil
}

// noSuchPathHandler returns an error on every call.
type noSuchPathHandler struct {
	path string
}

var _ cattery.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(cattery.Context, cattery.KVStore, cattery.Tx) (*cattery.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "path: %s", h.path)
}

func (h noSuchPathHandler) Deliver(cattery.Context, cattery.KVStore, cattery.Tx) (*cattery.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "path: %s", h.path)
}
