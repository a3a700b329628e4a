package app

import (
	"reflect"

	"github.com/iov-one/cattery"
)

// Decorators is an ordered stack of decorators waiting for the handler
// they wrap. The first decorator runs first.
type Decorators struct {
	chain []cattery.Decorator
}

// ChainDecorators starts a stack. Nil decorators, including typed nil
// pointers, are skipped so optional decorators can be passed inline:
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//		utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
func ChainDecorators(chain ...cattery.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with chain appended. The receiver is not
// modified.
func (d Decorators) Chain(chain ...cattery.Decorator) Decorators {
	next := make([]cattery.Decorator, len(d.chain), len(d.chain)+len(chain))
	copy(next, d.chain)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNilDecorator(d cattery.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler returns a handler running every decorator of the stack in
// order before h.
func (d Decorators) WithHandler(h cattery.Handler) cattery.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decorated{decorator: d.chain[i], next: h}
	}
	return h
}

// decorated is a handler made of one decorator and the handler it wraps.
type decorated struct {
	decorator cattery.Decorator
	next      cattery.Handler
}

var _ cattery.Handler = decorated{}

func (d decorated) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.next)
}
