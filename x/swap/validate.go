package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/tokens"
)

// requireParty ensures the party of one side signed the transaction.
func requireParty(ctx nftswap.Context, auth x.Authenticator, party nftswap.Address, side string) error {
	if !auth.HasAddress(ctx, party) {
		return errors.Wrapf(ErrAuthorizationMismatch, "%s party %s did not sign", side, party)
	}
	return nil
}

// requireEitherParty ensures one of the parties signed the transaction.
func requireEitherParty(ctx nftswap.Context, auth x.Authenticator, e *Escrow) error {
	if !auth.HasAddress(ctx, e.OfferingParty) && !auth.HasAddress(ctx, e.RequestingParty) {
		return errors.Wrap(ErrAuthorizationMismatch, "no party signed")
	}
	return nil
}

// requireRecorded ensures a supplied account is the one recorded on the
// escrow.
func requireRecorded(got, recorded nftswap.Address, name string) error {
	if !got.Equals(recorded) {
		return errors.Wrapf(ErrAccountIdentityMismatch, "%s account %s, escrow has %s", name, got, recorded)
	}
	return nil
}

// requireOwner ensures the account is owned by the expected address. The
// failure is reported as kind.
func requireOwner(kind *errors.Error, acc *tokens.Account, owner nftswap.Address, name string) error {
	if !acc.Owner.Equals(owner) {
		return errors.Wrapf(kind, "%s account owned by %s, want %s", name, acc.Owner, owner)
	}
	return nil
}

// requireSameOwner ensures two accounts are controlled by the same address.
func requireSameOwner(a, b *tokens.Account, nameA, nameB string) error {
	if !a.Owner.Equals(b.Owner) {
		return errors.Wrapf(ErrOwnershipMismatch, "%s owned by %s, %s owned by %s", nameA, a.Owner, nameB, b.Owner)
	}
	return nil
}

// requireSingleUnit ensures the account holds exactly one unit of the given
// asset type. An account of another asset type does not hold it.
func requireSingleUnit(acc *tokens.Account, assetType string, name string) error {
	if acc.AssetType != assetType {
		return errors.Wrapf(ErrSupplyInvariantViolation, "%s account holds %s, want %s", name, acc.AssetType, assetType)
	}
	if acc.Amount != 1 {
		return errors.Wrapf(ErrSupplyInvariantViolation, "%s account holds %d units", name, acc.Amount)
	}
	return nil
}
