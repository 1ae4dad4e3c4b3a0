package swap

import "github.com/iov-one/nftswap/errors"

var (
	// ErrAuthorizationMismatch is returned when the caller is not the
	// party recorded for the attempted side.
	ErrAuthorizationMismatch = errors.Register(1100, "authorization mismatch")

	// ErrAccountIdentityMismatch is returned when a supplied account is
	// not the one recorded on the escrow.
	ErrAccountIdentityMismatch = errors.Register(1101, "account identity mismatch")

	// ErrSupplyInvariantViolation is returned when an account does not
	// hold exactly one unit of its asset.
	ErrSupplyInvariantViolation = errors.Register(1102, "supply invariant violation")

	// ErrOwnershipMismatch is returned when an account is not owned by
	// the party expected to control it.
	ErrOwnershipMismatch = errors.Register(1103, "ownership mismatch")
)
