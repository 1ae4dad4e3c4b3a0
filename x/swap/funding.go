package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/x/tokens"
)

// FundingState tells which sides of an escrow are funded. It is always
// computed from the custody balances, which remain the source of truth.
type FundingState struct {
	OfferedFunded   bool
	RequestedFunded bool
}

// Ready returns true if both sides are funded and the escrow can be
// settled.
func (s FundingState) Ready() bool {
	return s.OfferedFunded && s.RequestedFunded
}

// Empty returns true if no side is funded.
func (s FundingState) Empty() bool {
	return !s.OfferedFunded && !s.RequestedFunded
}

// LoadFundingState reads the custody balances of the escrow. A side is
// funded when its custody account holds exactly one unit.
func LoadFundingState(db nftswap.ReadOnlyKVStore, ledger tokens.Controller, e *Escrow) (FundingState, error) {
	offered, err := ledger.Balance(db, e.OfferedCustody)
	if err != nil {
		return FundingState{}, err
	}
	requested, err := ledger.Balance(db, e.RequestedCustody)
	if err != nil {
		return FundingState{}, err
	}
	return FundingState{
		OfferedFunded:   offered == 1,
		RequestedFunded: requested == 1,
	}, nil
}
