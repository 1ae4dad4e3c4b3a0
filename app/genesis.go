package app

import (
	"github.com/iov-one/nftswap"
)

// ChainInitializers lets you initialize many extensions with one function.
func ChainInitializers(inits ...nftswap.Initializer) nftswap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []nftswap.Initializer
}

// FromGenesis passes opts to all Initializers in the list, aborting at the
// first error.
func (c chainInitializer) FromGenesis(opts nftswap.Options, kv nftswap.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
