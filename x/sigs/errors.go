package sigs

import "github.com/iov-one/nftswap/errors"

// ErrInvalidSequence is returned when a signature nonce does not match the
// stored one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
