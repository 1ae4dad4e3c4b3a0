package tokens

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
)

// Initializer loads the configuration, the asset types and the token
// accounts from the genesis file.
//
//	"conf": {"tokens": {"minter": "...", "max_supply": 1}},
//	"asset_types": [{"ticker": "PUNK1", "name": "Crypto punk 1"}],
//	"token_accounts": [
//	  {"address": "...", "asset_type": "PUNK1", "owner": "...", "amount": 1}
//	]
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis implements nftswap.Initializer.
func (Initializer) FromGenesis(opts nftswap.Options, db nftswap.KVStore) error {
	if err := gconf.InitConfig(db, opts, packageName, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var assets []struct {
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	}
	if err := opts.ReadOptions("asset_types", &assets); err != nil {
		return err
	}
	assetBucket := NewAssetTypeBucket()
	for i, a := range assets {
		if err := assetBucket.Has(db, []byte(a.Ticker)); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "asset type %d: %s", i, a.Ticker)
		}
		asset := &AssetType{
			Metadata: &nftswap.Metadata{Schema: 1},
			Ticker:   a.Ticker,
			Name:     a.Name,
		}
		if err := assetBucket.Put(db, []byte(a.Ticker), asset); err != nil {
			return errors.Wrapf(err, "asset type %d", i)
		}
	}

	var accounts []struct {
		Address   nftswap.Address `json:"address"`
		AssetType string          `json:"asset_type"`
		Owner     nftswap.Address `json:"owner"`
		Amount    uint64          `json:"amount"`
	}
	if err := opts.ReadOptions("token_accounts", &accounts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, a := range accounts {
		if _, err := ctrl.CreateAccount(db, a.Address, a.AssetType, a.Owner); err != nil {
			return errors.Wrapf(err, "token account %d", i)
		}
		if a.Amount == 0 {
			continue
		}
		if err := ctrl.Mint(db, a.Address, a.Amount); err != nil {
			return errors.Wrapf(err, "token account %d", i)
		}
	}
	return nil
}
