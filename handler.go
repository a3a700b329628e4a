package cattery

import (
	"encoding/json"

	"github.com/iov-one/cattery/errors"
)

// Handler processes the messages of one route, such as a kitty transfer
// or a coin send. Check validates a transaction for the mempool and
// Deliver executes it in a block.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around the handler of every message. Signature checks,
// savepoints and logging are decorators. It decides whether and with
// which context the next step runs.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message routes to handlers.
type Registry interface {
	// Handle routes every message with the path of msg to h.
	Handle(msg Msg, h Handler)
}

// Options is the app_state of the genesis file. Every extension reads its
// own key.
type Options map[string]json.RawMessage

// ReadOptions decodes the value under key into obj. A missing key leaves
// obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs the initializers in order and stops at the first
// failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return initializers(inits)
}

type initializers []Initializer

func (all initializers) FromGenesis(opts Options, db KVStore) error {
	for _, init := range all {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
