package tokens

import (
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/gconf"
	"github.com/iov-one/nftswap/weavetest/assert"
)

// setupLedger saves the configuration and registers the given asset types.
func setupLedger(t testing.TB, db nftswap.KVStore, conf *Configuration, tickers ...string) {
	t.Helper()
	assert.Nil(t, gconf.Save(db, packageName, conf))
	assets := NewAssetTypeBucket()
	for _, ticker := range tickers {
		asset := &AssetType{
			Metadata: &nftswap.Metadata{Schema: 1},
			Ticker:   ticker,
			Name:     "asset " + ticker,
		}
		assert.Nil(t, assets.Put(db, []byte(ticker), asset))
	}
}

// createAccount creates an account holding amount units.
func createAccount(t testing.TB, db nftswap.KVStore, ctrl Controller, addr nftswap.Address, ticker string, owner nftswap.Address, amount uint64) {
	t.Helper()
	_, err := ctrl.CreateAccount(db, addr, ticker, owner)
	assert.Nil(t, err)
	if amount > 0 {
		assert.Nil(t, ctrl.Mint(db, addr, amount))
	}
}
