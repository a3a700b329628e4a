package sigs

import (
	"github.com/iov-one/cattery"
)

// StdTx implements SignedTx with raw sign bytes.
type StdTx struct {
	cattery.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Payload: payload}
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []cattery.Condition
}

var _ cattery.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx cattery.Context, store cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &cattery.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx cattery.Context, store cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &cattery.DeliverResult{}, nil
}
