package tokens

import "github.com/iov-one/nftswap/errors"

var (
	// ErrInsufficientBalance is returned when an account holds fewer units
	// than requested.
	ErrInsufficientBalance = errors.Register(1001, "insufficient balance")

	// ErrSupplyExceeded is returned when minting would exceed the maximum
	// supply of an asset type.
	ErrSupplyExceeded = errors.Register(1002, "max supply exceeded")
)
