package sigs

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// NextNonce returns the sequence value that the next signature of the given
// signer must carry. Nonce counting starts with zero.
func NextNonce(db nftswap.ReadOnlyKVStore, signer nftswap.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "bucket get")
	}
	if u := AsUser(obj); u != nil {
		return u.Sequence, nil
	}
	return 0, nil
}
