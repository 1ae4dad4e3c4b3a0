package weavetest

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() nftswap.Condition {
	return NewKey().PublicKey().Condition()
}
