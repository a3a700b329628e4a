package sigs

import (
	"context"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/x"
)

type signersKey struct{}

// withSigners stores the verified signers. Only the sigs decorator sets
// them.
func withSigners(ctx cattery.Context, signers []cattery.Condition) cattery.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate reports the signers verified by the sigs decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signature conditions in the order of the
// signatures, or nil outside of a signed transaction.
func (Authenticate) GetConditions(ctx cattery.Context) []cattery.Condition {
	signers, _ := ctx.Value(signersKey{}).([]cattery.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx cattery.Context, addr cattery.Address) bool {
	for _, signer := range a.GetConditions(ctx) {
		if signer.Address().Equals(addr) {
			return true
		}
	}
	return false
}
