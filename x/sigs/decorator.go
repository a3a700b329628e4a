package sigs

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// signatureGas is charged on CheckTx for every verified signature.
const signatureGas = 500

// RegisterQuery serves user data under "/auth".
func RegisterQuery(qr cattery.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a transaction against the chain
// ID and the signer sequences, then exposes the signers through
// Authenticate. The sequences are incremented as part of the
// verification.
type Decorator struct {
	allowUnsigned bool
}

var _ cattery.Decorator = Decorator{}

// NewDecorator returns a decorator rejecting unsigned transactions.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a decorator passing unsigned transactions on
// with no signers.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowUnsigned = true
	return d
}

func (d Decorator) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Checker) (*cattery.CheckResult, error) {
	ctx, signed, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(signed) * signatureGas
	return res, nil
}

func (d Decorator) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Deliverer) (*cattery.DeliverResult, error) {
	ctx, _, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// verify returns a context carrying the signers of tx and their number.
func (d Decorator) verify(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (cattery.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		if d.allowUnsigned {
			return withSigners(ctx, nil), 0, nil
		}
		return ctx, 0, errors.Wrapf(errors.ErrUnauthorized, "%T cannot be signed", tx)
	}
	signers, err := VerifyTxSignatures(db, stx, cattery.GetChainID(ctx))
	if err != nil {
		return ctx, 0, errors.Wrap(err, "verify signatures")
	}
	if len(signers) == 0 && !d.allowUnsigned {
		return ctx, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), len(signers), nil
}
