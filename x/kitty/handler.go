package kitty

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
	"github.com/iov-one/cattery/x"
)

const (
	mintCost     int64 = 300
	transferCost int64 = 100
	setPriceCost int64 = 50
	buyCost      int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r cattery.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateKittyMsg{}, &createHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&SetPriceMsg{}, &setPriceHandler{auth: auth, ctrl: ctrl})
	r.Handle(&BuyMsg{}, &buyHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(configPkg, &Configuration{}, auth, nil))
}

type createHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = (*createHandler)(nil)

// Check runs the mint against the check cache, so owner capacity is
// enforced across pending transactions. The DNA depends on the position
// given to the transaction by CheckTx. Events are dropped.
func (h *createHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: mintCost}, nil
}

func (h *createHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	if created, ok := lastCreated(res.Events); ok {
		res.Data = created
	}
	return res, nil
}

func (h *createHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg CreateKittyMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	owner, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	_, err = h.ctrl.Mint(ctx, db, owner, emit)
	return err
}

// lastCreated returns the DNA of the minted kitty.
func lastCreated(events cattery.Events) (DNA, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if c, ok := events[i].(Created); ok {
			return c.DNA, true
		}
	}
	return nil, false
}

type transferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *transferHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg TransferMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	from, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	return h.ctrl.Transfer(ctx, db, from, msg.Recipient, msg.DNA, emit)
}

type setPriceHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = (*setPriceHandler)(nil)

func (h *setPriceHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: setPriceCost}, nil
}

func (h *setPriceHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *setPriceHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg SetPriceMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	owner, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	return h.ctrl.SetPrice(ctx, db, owner, msg.DNA, msg.Price, emit)
}

type buyHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ cattery.Handler = (*buyHandler)(nil)

func (h *buyHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.run(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: buyCost}, nil
}

func (h *buyHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.run(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *buyHandler) run(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, emit cattery.EventEmitter) error {
	var msg BuyMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	buyer, err := x.Caller(ctx, h.auth)
	if err != nil {
		return err
	}
	return h.ctrl.Buy(ctx, db, buyer, msg.DNA, *msg.Bid, emit)
}
