package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const (
	extensionName = "swap"

	offeredSide   = "offered"
	requestedSide = "requested"
)

// EscrowCondition returns the condition of the escrow between the two
// holding accounts and the bump needed to recompute it. Its address is the
// key of the escrow record and the owner of both custody accounts.
func EscrowCondition(offeredHolding, requestedHolding nftswap.Address) (nftswap.Condition, uint8, error) {
	return nftswap.FindDerivedCondition(extensionName, "escrow", offeredHolding, requestedHolding)
}

// CustodyAddress returns the address of the custody account of one side of
// an escrow. Side is either "offered" or "requested".
func CustodyAddress(side string, holding nftswap.Address) (nftswap.Address, error) {
	cond, _, err := nftswap.FindDerivedCondition(extensionName, "custody", []byte(side), holding)
	if err != nil {
		return nil, err
	}
	return cond.Address(), nil
}

// escrowAuthority recomputes the escrow condition from the bump given by the
// caller and ensures it matches the escrow stored under key.
func escrowAuthority(key nftswap.Address, bump uint32, offeredHolding, requestedHolding nftswap.Address) (nftswap.Condition, error) {
	if bump > maxBump {
		return nil, errors.Wrapf(ErrAccountIdentityMismatch, "bump %d out of range", bump)
	}
	cond, err := nftswap.CreateDerivedCondition(extensionName, "escrow", uint8(bump), offeredHolding, requestedHolding)
	if err != nil {
		return nil, errors.Wrap(ErrAccountIdentityMismatch, err.Error())
	}
	if !cond.Address().Equals(key) {
		return nil, errors.Wrap(ErrAccountIdentityMismatch, "derived escrow address does not match the record")
	}
	return cond, nil
}
