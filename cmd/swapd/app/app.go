/*
Package app links together all the various components to construct the
swapd application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store/iavl"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/swap"
	"github.com/iov-one/nftswap/x/tokens"
	"github.com/iov-one/nftswap/x/utils"
)

// Authenticator returns the typical authentication, just using public key
// signatures. The escrow authority is never part of it, only the swap
// handlers can act as an escrow.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication, logging
// and recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the message
		// fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the ledger, the swap and the
// signature handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ledger := tokens.NewController()
	tokens.RegisterRoutes(r, authFn, ledger)
	swap.RegisterRoutes(r, authFn, ledger)
	sigs.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router, allowing access to
// "/assets", "/accounts", "/escrows" and "/sigs".
func QueryRouter() nftswap.QueryRouter {
	r := nftswap.NewQueryRouter()
	r.RegisterAll(
		tokens.RegisterQuery,
		swap.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers returns the extensions loading state from the genesis.
func Initializers() nftswap.Initializer {
	return app.ChainInitializers(
		tokens.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator chain. This
// can be passed into BaseApp.
func Stack() nftswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with the given
// arguments. If you are not sure what to use for the Handler, just use
// Stack().
func Application(name string, h nftswap.Handler, tx nftswap.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	store = store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the named path. An empty path keeps the state in memory.
func CommitKVStore(dbPath string) (nftswap.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewCommitStore("", ""), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into its components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
