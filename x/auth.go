package x

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// Authenticator tells which conditions signed the current transaction.
// Extensions receive one in their constructor instead of depending on
// x/sigs directly.
type Authenticator interface {
	// GetConditions returns the fulfilled conditions, main signer first.
	GetConditions(cattery.Context) []cattery.Condition
	// HasAddress reports whether any fulfilled condition has this address.
	HasAddress(cattery.Context, cattery.Address) bool
}

// ChainAuth merges the conditions of several authenticators. Their order
// decides which one provides the main signer.
func ChainAuth(impls ...Authenticator) Authenticator {
	return chainedAuth(impls)
}

type chainedAuth []Authenticator

func (c chainedAuth) GetConditions(ctx cattery.Context) []cattery.Condition {
	var conds []cattery.Condition
	for _, a := range c {
		conds = append(conds, a.GetConditions(ctx)...)
	}
	return conds
}

func (c chainedAuth) HasAddress(ctx cattery.Context, addr cattery.Address) bool {
	for _, a := range c {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx cattery.Context, auth Authenticator) cattery.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// Caller returns the address of the main signer. An unsigned transaction
// is rejected with ErrUnauthorized.
func Caller(ctx cattery.Context, auth Authenticator) (cattery.Address, error) {
	signer := MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return signer.Address(), nil
}
