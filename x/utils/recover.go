package utils

import (
	"fmt"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// Recovery turns a panic raised while processing a transaction into an
// ErrPanic. The panic is logged together with the path of the message and
// the position of the transaction in the block.
type Recovery struct{}

var _ cattery.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

func (r Recovery) Check(ctx cattery.Context, store cattery.KVStore, tx cattery.Tx, next cattery.Checker) (_ *cattery.CheckResult, err error) {
	defer recoverTx(ctx, tx, "check", &err)
	return next.Check(ctx, store, tx)
}

func (r Recovery) Deliver(ctx cattery.Context, store cattery.KVStore, tx cattery.Tx, next cattery.Deliverer) (_ *cattery.DeliverResult, err error) {
	defer recoverTx(ctx, tx, "deliver", &err)
	return next.Deliver(ctx, store, tx)
}

// recoverTx must be deferred directly.
func recoverTx(ctx cattery.Context, tx cattery.Tx, phase string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	path := "(missing)"
	if tx != nil {
		path = cattery.GetPath(tx)
	}
	height, _ := cattery.GetHeight(ctx)
	index, _ := cattery.GetTxIndex(ctx)
	cattery.GetLogger(ctx).Error("transaction panicked",
		"phase", phase,
		"path", path,
		"height", height,
		"index", index,
		"panic", fmt.Sprint(p))
	*err = errors.Wrapf(errors.ErrPanic, "%s %s: %v", phase, path, p)
}
