package tokens

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
)

func TestControllerTransfer(t *testing.T) {
	owner := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	source := weavetest.RandomAddr(t)
	destination := weavetest.RandomAddr(t)
	otherAsset := weavetest.RandomAddr(t)

	cases := map[string]struct {
		signer          nftswap.Condition
		from, to        nftswap.Address
		amount          uint64
		wantErr         *errors.Error
		wantSource      uint64
		wantDestination uint64
	}{
		"owner moves the unit": {
			signer:          owner,
			from:            source,
			to:              destination,
			amount:          1,
			wantSource:      0,
			wantDestination: 1,
		},
		"stranger cannot move the unit": {
			signer:          stranger,
			from:            source,
			to:              destination,
			amount:          1,
			wantErr:         errors.ErrUnauthorized,
			wantSource:      1,
			wantDestination: 0,
		},
		"insufficient balance": {
			signer:          owner,
			from:            source,
			to:              destination,
			amount:          2,
			wantErr:         ErrInsufficientBalance,
			wantSource:      1,
			wantDestination: 0,
		},
		"asset type mismatch": {
			signer:          owner,
			from:            source,
			to:              otherAsset,
			amount:          1,
			wantErr:         errors.ErrType,
			wantSource:      1,
			wantDestination: 0,
		},
		"zero amount": {
			signer:          owner,
			from:            source,
			to:              destination,
			amount:          0,
			wantErr:         errors.ErrAmount,
			wantSource:      1,
			wantDestination: 0,
		},
		"missing destination": {
			signer:          owner,
			from:            source,
			to:              weavetest.RandomAddr(t),
			amount:          1,
			wantErr:         errors.ErrNotFound,
			wantSource:      1,
			wantDestination: 0,
		},
		"same account": {
			signer:          owner,
			from:            source,
			to:              source,
			amount:          1,
			wantErr:         errors.ErrInput,
			wantSource:      1,
			wantDestination: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			setupLedger(t, db, &Configuration{
				Metadata: &nftswap.Metadata{Schema: 1},
				Minter:   weavetest.RandomAddr(t),
			}, "PUNK1", "APE22")

			ctrl := NewController()
			createAccount(t, db, ctrl, source, "PUNK1", owner.Address(), 1)
			createAccount(t, db, ctrl, destination, "PUNK1", stranger.Address(), 0)
			createAccount(t, db, ctrl, otherAsset, "APE22", owner.Address(), 0)

			ctx := context.Background()
			auth := &weavetest.Auth{Signer: tc.signer}
			err := ctrl.Transfer(ctx, db, auth, tc.from, tc.to, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}

			balance, err := ctrl.Balance(db, source)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSource, balance)

			balance, err = ctrl.Balance(db, destination)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDestination, balance)
		})
	}
}

func TestControllerMintSupply(t *testing.T) {
	cases := map[string]struct {
		maxSupply uint64
		mints     []uint64
		wantErr   *errors.Error
		wantTotal uint64
	}{
		"one of one by default": {
			mints:     []uint64{1, 1},
			wantErr:   ErrSupplyExceeded,
			wantTotal: 1,
		},
		"single mint above default": {
			mints:     []uint64{2},
			wantErr:   ErrSupplyExceeded,
			wantTotal: 0,
		},
		"explicit supply of one": {
			maxSupply: 1,
			mints:     []uint64{1, 1},
			wantErr:   ErrSupplyExceeded,
			wantTotal: 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			setupLedger(t, db, &Configuration{
				Metadata:  &nftswap.Metadata{Schema: 1},
				Minter:    weavetest.RandomAddr(t),
				MaxSupply: tc.maxSupply,
			}, "PUNK1")

			ctrl := NewController()
			addr := weavetest.RandomAddr(t)
			createAccount(t, db, ctrl, addr, "PUNK1", weavetest.RandomAddr(t), 0)

			var err error
			for _, amount := range tc.mints {
				if err = ctrl.Mint(db, addr, amount); err != nil {
					break
				}
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}

			balance, err := ctrl.Balance(db, addr)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantTotal, balance)
		})
	}
}

func TestControllerCreateAccount(t *testing.T) {
	db := store.MemStore()
	setupLedger(t, db, &Configuration{
		Metadata: &nftswap.Metadata{Schema: 1},
		Minter:   weavetest.RandomAddr(t),
	}, "PUNK1")

	ctrl := NewController()
	addr := weavetest.RandomAddr(t)
	owner := weavetest.RandomAddr(t)

	acc, err := ctrl.CreateAccount(db, addr, "PUNK1", owner)
	assert.Nil(t, err)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, uint64(0), acc.Amount)

	_, err = ctrl.CreateAccount(db, addr, "PUNK1", owner)
	assert.IsErr(t, errors.ErrDuplicate, err)

	_, err = ctrl.CreateAccount(db, weavetest.RandomAddr(t), "NOPE1", owner)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = ctrl.CreateAccount(db, nftswap.Address("short"), "PUNK1", owner)
	assert.IsErr(t, errors.ErrInput, err)

	_, err = ctrl.Account(db, weavetest.RandomAddr(t))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestControllerCloseAccount(t *testing.T) {
	owner := weavetest.NewCondition()

	db := store.MemStore()
	setupLedger(t, db, &Configuration{
		Metadata: &nftswap.Metadata{Schema: 1},
		Minter:   weavetest.RandomAddr(t),
	}, "PUNK1")

	ctrl := NewController()
	full := weavetest.RandomAddr(t)
	empty := weavetest.RandomAddr(t)
	createAccount(t, db, ctrl, full, "PUNK1", owner.Address(), 1)
	createAccount(t, db, ctrl, empty, "PUNK1", owner.Address(), 0)

	ctx := context.Background()
	err := ctrl.CloseAccount(ctx, db, &weavetest.Auth{Signer: weavetest.NewCondition()}, empty)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	err = ctrl.CloseAccount(ctx, db, &weavetest.Auth{Signer: owner}, full)
	assert.IsErr(t, errors.ErrState, err)

	assert.Nil(t, ctrl.CloseAccount(ctx, db, &weavetest.Auth{Signer: owner}, empty))
	_, err = ctrl.Account(db, empty)
	assert.IsErr(t, errors.ErrNotFound, err)
}
