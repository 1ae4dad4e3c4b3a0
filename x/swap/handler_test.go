package swap

import (
	"context"
	"strings"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
	"github.com/iov-one/nftswap/x/tokens"
)

func TestSwap(t *testing.T) {
	f := newSwapFixture(t)

	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	assert.Equal(t, uint64(0), f.balance(t, f.offeredCustody))
	assert.Equal(t, uint64(0), f.balance(t, f.requestedCustody))

	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())

	// Anyone can settle.
	f.mustDeliver(t, signedBy(f.carol), f.settleMsg())

	wantBalances := map[string]struct {
		addr nftswap.Address
		want uint64
	}{
		"alice holding":     {f.aliceHolding, 0},
		"bob holding":       {f.bobHolding, 0},
		"alice inbox":       {f.aliceInbox, 1},
		"bob inbox":         {f.bobInbox, 1},
		"offered custody":   {f.offeredCustody, 0},
		"requested custody": {f.requestedCustody, 0},
	}
	for name, b := range wantBalances {
		if got := f.balance(t, b.addr); got != b.want {
			t.Errorf("%s: want %d, got %d", name, b.want, got)
		}
	}

	// Settlement is terminal.
	f.wantErr(t, ErrSupplyInvariantViolation, signedBy(f.carol), f.settleMsg())
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.alice), f.fundOfferedMsg())
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.alice), f.defundOfferedMsg())
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.bob), f.defundRequestedMsg())
}

func TestInit(t *testing.T) {
	cases := map[string]struct {
		signedByBob bool
		msg         func(f *swapFixture) *InitMsg
		wantErr     *errors.Error
	}{
		"offerer opens an escrow": {
			msg: func(f *swapFixture) *InitMsg { return f.initMsg() },
		},
		"offerer must sign": {
			signedByBob: true,
			msg:         func(f *swapFixture) *InitMsg { return f.initMsg() },
			wantErr:     errors.ErrUnauthorized,
		},
		"offered holding of another owner": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.OfferedHolding = f.bobInbox
				return m
			},
			wantErr: ErrAuthorizationMismatch,
		},
		"requested holding of another owner": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.Requester = f.carol.Address()
				return m
			},
			wantErr: ErrAuthorizationMismatch,
		},
		"offered holding of another asset type": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.OfferedAssetType = "APE22"
				return m
			},
			wantErr: ErrSupplyInvariantViolation,
		},
		"requested holding is empty": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.RequestedHolding = f.bobInbox
				m.RequestedAssetType = "PUNK1"
				return m
			},
			wantErr: ErrSupplyInvariantViolation,
		},
		"unknown holding": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.OfferedHolding = weavetest.RandomAddr(t)
				return m
			},
			wantErr: errors.ErrNotFound,
		},
		"cannot swap with yourself": {
			msg: func(f *swapFixture) *InitMsg {
				m := f.initMsg()
				m.Requester = m.Offerer
				return m
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newSwapFixture(t)
			signers := signedBy(f.alice)
			if tc.signedByBob {
				signers = signedBy(f.bob)
			}
			f.wantErr(t, tc.wantErr, signers, tc.msg(f))

			err := NewEscrowBucket().Has(f.db, f.escrow)
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, errors.ErrNotFound, err)
			}
		})
	}
}

func TestInitCreatesRecord(t *testing.T) {
	f := newSwapFixture(t)

	ctx := f.auth.SetConditions(context.Background(), f.alice)
	res, err := f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: f.initMsg()})
	assert.Nil(t, err)
	assert.Equal(t, []byte(f.escrow), res.Data)

	e, err := loadEscrow(f.db, NewEscrowBucket(), f.escrow)
	assert.Nil(t, err)
	assert.Equal(t, f.alice.Address(), e.OfferingParty)
	assert.Equal(t, f.bob.Address(), e.RequestingParty)
	assert.Equal(t, f.offeredCustody, e.OfferedCustody)
	assert.Equal(t, f.requestedCustody, e.RequestedCustody)

	for _, addr := range []nftswap.Address{f.offeredCustody, f.requestedCustody} {
		acc, err := f.ledger.Account(f.db, addr)
		assert.Nil(t, err)
		assert.Equal(t, f.escrow, acc.Owner)
		assert.Equal(t, uint64(0), acc.Amount)
	}
	custody, err := f.ledger.Account(f.db, f.offeredCustody)
	assert.Nil(t, err)
	assert.Equal(t, "PUNK1", custody.AssetType)

	// One escrow per pair of holdings.
	f.wantErr(t, errors.ErrDuplicate, signedBy(f.alice), f.initMsg())
}

func TestFund(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	// Only the party of a side funds it.
	f.wantErr(t, ErrAuthorizationMismatch, signedBy(f.bob), f.fundOfferedMsg())
	f.wantErr(t, ErrAuthorizationMismatch, signedBy(f.alice), f.fundRequestedMsg())

	// Custody of the other side.
	wrongCustody := f.fundOfferedMsg()
	wrongCustody.Custody = f.requestedCustody
	f.wantErr(t, ErrAccountIdentityMismatch, signedBy(f.alice), wrongCustody)

	// Unknown escrow.
	unknown := f.fundOfferedMsg()
	unknown.Escrow = weavetest.RandomAddr(t)
	f.wantErr(t, errors.ErrNotFound, signedBy(f.alice), unknown)

	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	assert.Equal(t, uint64(0), f.balance(t, f.aliceHolding))
	assert.Equal(t, uint64(1), f.balance(t, f.offeredCustody))

	state, err := LoadFundingState(f.db, f.ledger, f.mustLoad(t))
	assert.Nil(t, err)
	assert.Equal(t, FundingState{OfferedFunded: true}, state)

	// The holding is empty now.
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.alice), f.fundOfferedMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.offeredCustody))
}

func TestFundRejectsForeignCustody(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	// Move the custody account to another owner behind the escrow's back.
	var custody tokens.Account
	accounts := tokens.NewAccountBucket()
	assert.Nil(t, accounts.One(f.db, f.offeredCustody, &custody))
	custody.Owner = f.alice.Address()
	assert.Nil(t, accounts.Put(f.db, f.offeredCustody, &custody))

	f.wantErr(t, ErrOwnershipMismatch, signedBy(f.alice), f.fundOfferedMsg())
}

func TestDefund(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())

	// Only the party of a side takes its asset back.
	f.wantErr(t, ErrAuthorizationMismatch, signedBy(f.bob), f.defundOfferedMsg())
	f.wantErr(t, ErrAuthorizationMismatch, signedBy(f.carol), f.defundRequestedMsg())

	wrongCustody := f.defundOfferedMsg()
	wrongCustody.Custody = f.requestedCustody
	f.wantErr(t, ErrAccountIdentityMismatch, signedBy(f.alice), wrongCustody)

	wrongBump := f.defundOfferedMsg()
	wrongBump.Bump = f.otherBump()
	f.wantErr(t, ErrAccountIdentityMismatch, signedBy(f.alice), wrongBump)

	// The holdings are part of the escrow identity.
	wrongHolding := f.defundOfferedMsg()
	wrongHolding.OfferedHolding = f.bobInbox
	f.wantErr(t, ErrAccountIdentityMismatch, signedBy(f.alice), wrongHolding)

	// The requested side also checks who controls the holdings.
	foreignHolding := f.defundRequestedMsg()
	foreignHolding.OfferedHolding = f.bobInbox
	f.wantErr(t, ErrOwnershipMismatch, signedBy(f.bob), foreignHolding)

	f.mustDeliver(t, signedBy(f.alice), f.defundOfferedMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.aliceHolding))
	assert.Equal(t, uint64(0), f.balance(t, f.offeredCustody))

	// Settlement needs both sides.
	f.wantErr(t, ErrSupplyInvariantViolation, signedBy(f.carol), f.settleMsg())

	// Withdrawn twice.
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.alice), f.defundOfferedMsg())

	f.mustDeliver(t, signedBy(f.bob), f.defundRequestedMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.bobHolding))
	assert.Equal(t, uint64(0), f.balance(t, f.requestedCustody))

	// Funding again after withdrawing restores the state.
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())
	f.mustDeliver(t, signedBy(f.carol), f.settleMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.aliceInbox))
	assert.Equal(t, uint64(1), f.balance(t, f.bobInbox))
}

func TestSettle(t *testing.T) {
	cases := map[string]struct {
		msg     func(f *swapFixture) *SettleMsg
		wantErr *errors.Error
	}{
		"settled": {
			msg: func(f *swapFixture) *SettleMsg { return f.settleMsg() },
		},
		"wrong offered custody": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.OfferedCustody = f.requestedCustody
				return m
			},
			wantErr: ErrAccountIdentityMismatch,
		},
		"wrong requested custody": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.RequestedCustody = f.offeredCustody
				return m
			},
			wantErr: ErrAccountIdentityMismatch,
		},
		"offered asset sent back to the offerer": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.OfferedDestination = f.aliceInbox
				return m
			},
			wantErr: ErrOwnershipMismatch,
		},
		"requested asset sent back to the requester": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.RequestedDestination = f.bobInbox
				return m
			},
			wantErr: ErrOwnershipMismatch,
		},
		"destinations of a third party": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.OfferedDestination = f.account(t, "PUNK1", f.carol.Address(), 0)
				m.RequestedDestination = f.account(t, "APE22", f.carol.Address(), 0)
				return m
			},
			wantErr: ErrOwnershipMismatch,
		},
		"wrong bump": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.Bump = f.otherBump()
				return m
			},
			wantErr: ErrAccountIdentityMismatch,
		},
		"unknown escrow": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.Escrow = weavetest.RandomAddr(t)
				return m
			},
			wantErr: errors.ErrNotFound,
		},
		"bump out of range": {
			msg: func(f *swapFixture) *SettleMsg {
				m := f.settleMsg()
				m.Bump = 256
				return m
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newSwapFixture(t)
			f.mustDeliver(t, signedBy(f.alice), f.initMsg())
			f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
			f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())

			f.wantErr(t, tc.wantErr, nil, tc.msg(f))

			state, err := LoadFundingState(f.db, f.ledger, f.mustLoad(t))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantErr != nil, state.Ready())
		})
	}
}

func TestSettleIsAtomic(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())

	// The offered destination belongs to bob but holds another asset type,
	// so the second transfer fails after the first one succeeded.
	msg := f.settleMsg()
	msg.OfferedDestination = f.bobHolding

	// Deliver straight into the store, without a transaction savepoint.
	_, err := f.router.Deliver(context.Background(), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, errors.ErrType, err)

	assert.Equal(t, uint64(1), f.balance(t, f.offeredCustody))
	assert.Equal(t, uint64(1), f.balance(t, f.requestedCustody))
	assert.Equal(t, uint64(0), f.balance(t, f.aliceInbox))
	assert.Equal(t, uint64(0), f.balance(t, f.bobInbox))
}

func TestCheckDoesNotWrite(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	ctx := f.auth.SetConditions(context.Background(), f.alice)
	_, err := f.router.Check(ctx, f.db, &weavetest.Tx{Msg: f.fundOfferedMsg()})
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), f.balance(t, f.aliceHolding))
	assert.Equal(t, uint64(0), f.balance(t, f.offeredCustody))

	ctx = f.auth.SetConditions(context.Background(), f.bob)
	_, err = f.router.Check(ctx, f.db, &weavetest.Tx{Msg: f.fundOfferedMsg()})
	assert.IsErr(t, ErrAuthorizationMismatch, err)
}

func TestInitRejectsHoldingInCustody(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	kitty := &tokens.AssetType{Metadata: meta, Ticker: "KITTY", Name: "asset KITTY"}
	assert.Nil(t, tokens.NewAssetTypeBucket().Put(f.db, []byte("KITTY"), kitty))
	carolHolding := f.account(t, "KITTY", f.carol.Address(), 1)

	// The offered holding already backs the escrow with bob, so its custody
	// account exists.
	msg := &InitMsg{
		Metadata:           meta,
		Offerer:            f.alice.Address(),
		Requester:          f.carol.Address(),
		OfferedAssetType:   "PUNK1",
		RequestedAssetType: "KITTY",
		OfferedHolding:     f.aliceHolding,
		RequestedHolding:   carolHolding,
	}
	ctx := f.auth.SetConditions(context.Background(), f.alice)
	_, err := f.router.Check(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, errors.ErrDuplicate, err)
	f.wantErr(t, errors.ErrDuplicate, signedBy(f.alice), msg)
}

func TestSettleReportsFirstMissingAccount(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	msg := f.settleMsg()
	msg.OfferedHolding = weavetest.RandomAddr(t)
	msg.RequestedDestination = weavetest.RandomAddr(t)

	for i := 0; i < 10; i++ {
		err := f.deliver(signedBy(f.carol), msg)
		assert.IsErr(t, errors.ErrNotFound, err)
		if !strings.Contains(err.Error(), "offered holding") || strings.Contains(err.Error(), "requested destination") {
			t.Fatalf("unexpected error: %s", err)
		}
	}
}

func TestCustodyHoldsSingleUnit(t *testing.T) {
	f := newSwapFixture(t)

	raised := &tokens.Configuration{
		Metadata:  meta,
		Minter:    f.carol.Address(),
		MaxSupply: 2,
	}
	assert.IsErr(t, errors.ErrInput, gconf.Save(f.db, "tokens", raised))

	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())

	err := f.ledger.Mint(f.db, f.aliceHolding, 1)
	assert.IsErr(t, tokens.ErrSupplyExceeded, err)
	f.wantErr(t, tokens.ErrInsufficientBalance, signedBy(f.alice), f.fundOfferedMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.offeredCustody))
}

func TestClose(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())

	f.wantErr(t, ErrAuthorizationMismatch, signedBy(f.carol), f.closeMsg())
	f.wantErr(t, ErrSupplyInvariantViolation, signedBy(f.alice), f.closeMsg())

	f.mustDeliver(t, signedBy(f.bob), f.defundRequestedMsg())

	wrongBump := f.closeMsg()
	wrongBump.Bump = f.otherBump()
	f.wantErr(t, ErrAccountIdentityMismatch, signedBy(f.alice), wrongBump)

	f.mustDeliver(t, signedBy(f.bob), f.closeMsg())

	assert.IsErr(t, errors.ErrNotFound, NewEscrowBucket().Has(f.db, f.escrow))
	_, err := f.ledger.Account(f.db, f.offeredCustody)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = f.ledger.Account(f.db, f.requestedCustody)
	assert.IsErr(t, errors.ErrNotFound, err)

	// The same holdings can be put in escrow again.
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	assert.Equal(t, uint64(1), f.balance(t, f.offeredCustody))
}

func TestCloseAfterSettlement(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())
	f.mustDeliver(t, signedBy(f.alice), f.fundOfferedMsg())
	f.mustDeliver(t, signedBy(f.bob), f.fundRequestedMsg())
	f.mustDeliver(t, signedBy(f.carol), f.settleMsg())

	f.mustDeliver(t, signedBy(f.alice), f.closeMsg())
	assert.IsErr(t, errors.ErrNotFound, NewEscrowBucket().Has(f.db, f.escrow))
}

func TestQueryEscrows(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, signedBy(f.alice), f.initMsg())

	qr := nftswap.NewQueryRouter()
	RegisterQuery(qr)

	models, err := qr.Handler("/escrows").Query(f.db, "", f.escrow)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	var e Escrow
	assert.Nil(t, e.Unmarshal(models[0].Value))
	assert.Equal(t, "APE22", e.RequestedAssetType)

	models, err = qr.Handler("/escrows/offerer").Query(f.db, "", f.alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	models, err = qr.Handler("/escrows/requester").Query(f.db, "", f.alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))
}

func (f *swapFixture) mustLoad(t testing.TB) *Escrow {
	t.Helper()
	e, err := loadEscrow(f.db, NewEscrowBucket(), f.escrow)
	assert.Nil(t, err)
	return e
}
