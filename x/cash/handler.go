package cash

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
	"github.com/iov-one/cattery/x"
)

const sendTxCost int64 = 100

// RegisterRoutes registers the transfer and configuration handlers.
func RegisterRoutes(r cattery.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery serves wallets under "/wallets".
func RegisterQuery(qr cattery.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler moves coins out of the wallet of the signer.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ cattery.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

// Check runs the transfer against the check cache, so pending
// transactions cannot spend the same coins twice.
func (h SendHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.send(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h SendHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.send(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	return res, nil
}

func (h SendHandler) send(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, events cattery.EventEmitter) error {
	var msg SendMsg
	if err := cattery.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s must sign", msg.Source)
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return err
	}
	events.Emit(Sent{From: msg.Source, To: msg.Destination, Amount: *msg.Amount})
	return nil
}

// NewConfigHandler returns a handler of the UpdateConfigurationMsg.
func NewConfigHandler(auth x.Authenticator) cattery.Handler {
	return gconf.NewUpdateConfigurationHandler(configPkg, &Configuration{}, auth, nil)
}
