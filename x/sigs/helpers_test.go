package sigs

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/weavetest"
)

// StdTx carries a payload that is signed as is.
type StdTx struct {
	weavetest.Tx
	payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ nftswap.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{payload: payload}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

// SigCheckHandler stores the seen signers on each call.
type SigCheckHandler struct {
	Signers []nftswap.Condition
}

var _ nftswap.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &nftswap.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &nftswap.DeliverResult{}, nil
}
