package swap

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
	"github.com/iov-one/nftswap/x/tokens"
)

var meta = &nftswap.Metadata{Schema: 1}

// swapFixture is a ledger where alice holds the only PUNK1 and bob holds the
// only APE22. Each of them also has an empty account to receive the asset
// of the other.
type swapFixture struct {
	db     nftswap.CacheableKVStore
	auth   *weavetest.CtxAuth
	router *app.Router
	ledger tokens.Controller

	alice nftswap.Condition
	bob   nftswap.Condition
	carol nftswap.Condition

	aliceHolding nftswap.Address
	bobHolding   nftswap.Address
	aliceInbox   nftswap.Address
	bobInbox     nftswap.Address

	escrow           nftswap.Address
	bump             uint32
	offeredCustody   nftswap.Address
	requestedCustody nftswap.Address
}

func newSwapFixture(t testing.TB) *swapFixture {
	t.Helper()

	f := &swapFixture{
		db:     store.MemStore(),
		auth:   &weavetest.CtxAuth{Key: "auth"},
		router: app.NewRouter(),
		ledger: tokens.NewController(),
		alice:  weavetest.NewCondition(),
		bob:    weavetest.NewCondition(),
		carol:  weavetest.NewCondition(),
	}
	RegisterRoutes(f.router, f.auth, f.ledger)

	assets := tokens.NewAssetTypeBucket()
	for _, ticker := range []string{"PUNK1", "APE22"} {
		asset := &tokens.AssetType{Metadata: meta, Ticker: ticker, Name: "asset " + ticker}
		assert.Nil(t, assets.Put(f.db, []byte(ticker), asset))
	}

	f.aliceHolding = f.account(t, "PUNK1", f.alice.Address(), 1)
	f.bobHolding = f.account(t, "APE22", f.bob.Address(), 1)
	f.aliceInbox = f.account(t, "APE22", f.alice.Address(), 0)
	f.bobInbox = f.account(t, "PUNK1", f.bob.Address(), 0)

	cond, bump, err := EscrowCondition(f.aliceHolding, f.bobHolding)
	assert.Nil(t, err)
	f.escrow = cond.Address()
	f.bump = uint32(bump)

	f.offeredCustody, err = CustodyAddress(offeredSide, f.aliceHolding)
	assert.Nil(t, err)
	f.requestedCustody, err = CustodyAddress(requestedSide, f.bobHolding)
	assert.Nil(t, err)
	return f
}

// account creates a token account holding amount units.
func (f *swapFixture) account(t testing.TB, ticker string, owner nftswap.Address, amount uint64) nftswap.Address {
	t.Helper()
	addr := weavetest.RandomAddr(t)
	_, err := f.ledger.CreateAccount(f.db, addr, ticker, owner)
	assert.Nil(t, err)
	if amount > 0 {
		assert.Nil(t, f.ledger.Mint(f.db, addr, amount))
	}
	return addr
}

// deliver processes the message signed by the given conditions. Changes are
// written only when the message succeeds.
func (f *swapFixture) deliver(signers []nftswap.Condition, msg nftswap.Msg) error {
	ctx := f.auth.SetConditions(context.Background(), signers...)
	tx := &weavetest.Tx{Msg: msg}
	cache := f.db.CacheWrap()
	if _, err := f.router.Deliver(ctx, cache, tx); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (f *swapFixture) balance(t testing.TB, addr nftswap.Address) uint64 {
	t.Helper()
	n, err := f.ledger.Balance(f.db, addr)
	assert.Nil(t, err)
	return n
}

func (f *swapFixture) initMsg() *InitMsg {
	return &InitMsg{
		Metadata:           meta,
		Offerer:            f.alice.Address(),
		Requester:          f.bob.Address(),
		OfferedAssetType:   "PUNK1",
		RequestedAssetType: "APE22",
		OfferedHolding:     f.aliceHolding,
		RequestedHolding:   f.bobHolding,
	}
}

func (f *swapFixture) fundOfferedMsg() *FundOfferedMsg {
	return &FundOfferedMsg{
		Metadata: meta,
		Escrow:   f.escrow,
		Holding:  f.aliceHolding,
		Custody:  f.offeredCustody,
	}
}

func (f *swapFixture) fundRequestedMsg() *FundRequestedMsg {
	return &FundRequestedMsg{
		Metadata: meta,
		Escrow:   f.escrow,
		Holding:  f.bobHolding,
		Custody:  f.requestedCustody,
	}
}

func (f *swapFixture) defundOfferedMsg() *DefundOfferedMsg {
	return &DefundOfferedMsg{
		Metadata:         meta,
		Bump:             f.bump,
		Escrow:           f.escrow,
		OfferedHolding:   f.aliceHolding,
		RequestedHolding: f.bobHolding,
		Custody:          f.offeredCustody,
	}
}

func (f *swapFixture) defundRequestedMsg() *DefundRequestedMsg {
	return &DefundRequestedMsg{
		Metadata:         meta,
		Bump:             f.bump,
		Escrow:           f.escrow,
		OfferedHolding:   f.aliceHolding,
		RequestedHolding: f.bobHolding,
		Custody:          f.requestedCustody,
	}
}

func (f *swapFixture) settleMsg() *SettleMsg {
	return &SettleMsg{
		Metadata:             meta,
		Bump:                 f.bump,
		Escrow:               f.escrow,
		OfferedHolding:       f.aliceHolding,
		RequestedHolding:     f.bobHolding,
		OfferedCustody:       f.offeredCustody,
		RequestedCustody:     f.requestedCustody,
		OfferedDestination:   f.bobInbox,
		RequestedDestination: f.aliceInbox,
	}
}

func (f *swapFixture) closeMsg() *CloseMsg {
	return &CloseMsg{
		Metadata:         meta,
		Bump:             f.bump,
		Escrow:           f.escrow,
		OfferedHolding:   f.aliceHolding,
		RequestedHolding: f.bobHolding,
	}
}

// otherBump returns a bump in range that does not recompute the escrow.
func (f *swapFixture) otherBump() uint32 {
	return f.bump ^ 1
}

func signedBy(conds ...nftswap.Condition) []nftswap.Condition {
	return conds
}

// mustDeliver fails the test if the message is rejected.
func (f *swapFixture) mustDeliver(t testing.TB, signers []nftswap.Condition, msg nftswap.Msg) {
	t.Helper()
	if err := f.deliver(signers, msg); err != nil {
		t.Fatalf("%s: %+v", msg.Path(), err)
	}
}

// wantErr fails the test unless the message is rejected with the given
// error.
func (f *swapFixture) wantErr(t testing.TB, want *errors.Error, signers []nftswap.Condition, msg nftswap.Msg) {
	t.Helper()
	if err := f.deliver(signers, msg); !want.Is(err) {
		t.Fatalf("%s: want %v error, got %+v", msg.Path(), want, err)
	}
}
