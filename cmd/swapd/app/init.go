package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/tokens"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions produces the app_state for a development chain. The first
// argument is the hex address of the minter. Without it a new key is
// generated and printed out.
//
// Every further argument registers an asset type with that ticker.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var minter nftswap.Address
	if len(args) > 0 {
		addr, err := nftswap.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "minter")
		}
		minter = addr
	} else {
		addr, keys, err := GenerateMinterKey()
		if err != nil {
			return nil, err
		}
		minter = addr
		fmt.Println(keys)
	}

	type assetType struct {
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	}
	assets := []assetType{}
	if len(args) > 1 {
		for _, ticker := range args[1:] {
			if err := tokens.ValidateTicker(ticker); err != nil {
				return nil, err
			}
			assets = append(assets, assetType{Ticker: ticker, Name: "asset " + ticker})
		}
	}

	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"tokens": map[string]interface{}{
				"metadata":   map[string]int{"schema": 1},
				"owner":      minter,
				"minter":     minter,
				"max_supply": 1,
			},
		},
		"asset_types":    assets,
		"token_accounts": []interface{}{},
	}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "swap.db")
	}

	application, err := Application("swapd", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateMinterKey returns the address of a new key, along with a json
// representation of the key pair, so that it can be imported by a client.
func GenerateMinterKey() (nftswap.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot serialize keys")
	}
	return pubKey.Address(), string(keys), nil
}
