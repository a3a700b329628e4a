package greeter

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/x"
)

const (
	greetCost int64 = 10
	alterCost int64 = 20
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r cattery.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&GreetMsg{}, greetHandler{auth: auth, ctrl: ctrl})
	r.Handle(&AlterMembershipMsg{}, alterMembershipHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/members"
func RegisterQuery(qr cattery.QueryRouter) {
	NewBucket().Register("members", qr)
}

type greetHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = greetHandler{}

func (h greetHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: greetCost}, nil
}

func (h greetHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h greetHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg GreetMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	m, err := h.ctrl.Greet(db, caller, emit)
	if err != nil {
		return err
	}
	cattery.GetLogger(ctx).Debug("greeted", "user", caller, "count", m.GreetCount)
	return nil
}

type alterMembershipHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = alterMembershipHandler{}

func (h alterMembershipHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: alterCost}, nil
}

func (h alterMembershipHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h alterMembershipHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg AlterMembershipMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	_, err = h.ctrl.AlterMembership(db, caller, msg.Membership, emit)
	return err
}
