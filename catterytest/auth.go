package catterytest

import (
	"context"

	"github.com/iov-one/cattery"
)

// Auth authenticates a fixed set of conditions. Signer, when set, comes
// after Signers.
type Auth struct {
	Signer  cattery.Condition
	Signers []cattery.Condition
}

func (a *Auth) GetConditions(cattery.Context) []cattery.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append(append([]cattery.Condition{}, a.Signers...), a.Signer)
}

func (a *Auth) HasAddress(ctx cattery.Context, addr cattery.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context under Key.
// Two CtxAuth with different keys do not see each other's conditions.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context in which conds signed the transaction.
func (a *CtxAuth) SetConditions(ctx cattery.Context, conds ...cattery.Condition) cattery.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx cattery.Context) []cattery.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]cattery.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx cattery.Context, addr cattery.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []cattery.Condition, addr cattery.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
