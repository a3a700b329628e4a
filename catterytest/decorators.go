package catterytest

import "github.com/iov-one/cattery"

// Call is a single pass of a transaction through a test handler or
// decorator.
type Call struct {
	// Phase is either "check" or "deliver".
	Phase string
	Path  string
}

// Calls records the transactions seen, in order.
type Calls []Call

func (c *Calls) record(phase string, tx cattery.Tx) {
	path := "(missing)"
	if tx != nil {
		path = cattery.GetPath(tx)
	}
	*c = append(*c, Call{Phase: phase, Path: path})
}

// Decorator passes transactions to the next handler and records them.
// A set CheckErr or DeliverErr is returned instead of calling the next
// handler. Failed calls are recorded as well.
type Decorator struct {
	Calls      Calls
	CheckErr   error
	DeliverErr error
}

var _ cattery.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Checker) (*cattery.CheckResult, error) {
	d.Calls.record("check", tx)
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Deliverer) (*cattery.DeliverResult, error) {
	d.Calls.record("deliver", tx)
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}
