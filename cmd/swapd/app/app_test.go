package app

import (
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/swap"
	"github.com/iov-one/nftswap/x/tokens"
)

const chainID = "test-chain"

var meta = &nftswap.Metadata{Schema: 1}

// signer signs transactions and tracks its own sequence.
type signer struct {
	key *crypto.PrivateKey
	seq int64
}

func newSigner() *signer {
	return &signer{key: crypto.GenPrivKeyEd25519()}
}

func (s *signer) address() nftswap.Address {
	return s.key.PublicKey().Address()
}

func (s *signer) sign(t *testing.T, tx *Tx) *Tx {
	t.Helper()
	sig, err := sigs.SignTx(s.key, tx, chainID, s.seq)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)
	s.seq++
	return tx
}

func TestSwapEndToEnd(t *testing.T) {
	alice, bob, carol := newSigner(), newSigner(), newSigner()
	minter := weavetest.NewCondition()

	aliceHolding := weavetest.NewCondition().Address()
	bobHolding := weavetest.NewCondition().Address()
	aliceInbox := weavetest.NewCondition().Address()
	bobInbox := weavetest.NewCondition().Address()

	application, err := Application("swapd", Stack(), TxDecoder, "", false)
	assert.Nil(t, err)
	runner := weavetest.NewAppRunner(t, application, chainID)

	runner.InitChain(map[string]interface{}{
		"conf": map[string]interface{}{
			"tokens": map[string]interface{}{
				"metadata":   meta,
				"owner":      minter.Address(),
				"minter":     minter.Address(),
				"max_supply": 1,
			},
		},
		"asset_types": []interface{}{
			map[string]string{"ticker": "PUNK1", "name": "punk"},
			map[string]string{"ticker": "APE22", "name": "ape"},
		},
		"token_accounts": []interface{}{
			map[string]interface{}{"address": aliceHolding, "asset_type": "PUNK1", "owner": alice.address(), "amount": 1},
			map[string]interface{}{"address": bobHolding, "asset_type": "APE22", "owner": bob.address(), "amount": 1},
			map[string]interface{}{"address": aliceInbox, "asset_type": "APE22", "owner": alice.address()},
			map[string]interface{}{"address": bobInbox, "asset_type": "PUNK1", "owner": bob.address()},
		},
	})

	cond, bump, err := swap.EscrowCondition(aliceHolding, bobHolding)
	assert.Nil(t, err)
	escrow := cond.Address()
	offeredCustody, err := swap.CustodyAddress("offered", aliceHolding)
	assert.Nil(t, err)
	requestedCustody, err := swap.CustodyAddress("requested", bobHolding)
	assert.Nil(t, err)

	settle := func() *Tx {
		return &Tx{SettleMsg: &swap.SettleMsg{
			Metadata:             meta,
			Bump:                 uint32(bump),
			Escrow:               escrow,
			OfferedHolding:       aliceHolding,
			RequestedHolding:     bobHolding,
			OfferedCustody:       offeredCustody,
			RequestedCustody:     requestedCustody,
			OfferedDestination:   bobInbox,
			RequestedDestination: aliceInbox,
		}}
	}

	runner.InBlock(func(txs weavetest.TxRunner) error {
		return txs.DeliverTx(alice.sign(t, &Tx{
			InitMsg: &swap.InitMsg{
				Metadata:           meta,
				Offerer:            alice.address(),
				Requester:          bob.address(),
				OfferedAssetType:   "PUNK1",
				RequestedAssetType: "APE22",
				OfferedHolding:     aliceHolding,
				RequestedHolding:   bobHolding,
			},
		}))
	})

	// Nothing is funded yet.
	err = runner.CheckTx(newSigner().sign(t, settle()))
	if !swap.ErrSupplyInvariantViolation.Is(err) {
		t.Fatalf("unexpected settle error: %+v", err)
	}

	runner.InBlock(func(txs weavetest.TxRunner) error {
		err := txs.DeliverTx(alice.sign(t, &Tx{
			FundOfferedMsg: &swap.FundOfferedMsg{
				Metadata: meta,
				Escrow:   escrow,
				Holding:  aliceHolding,
				Custody:  offeredCustody,
			},
		}))
		if err != nil {
			return errors.Wrap(err, "fund offered")
		}
		err = txs.DeliverTx(bob.sign(t, &Tx{
			FundRequestedMsg: &swap.FundRequestedMsg{
				Metadata: meta,
				Escrow:   escrow,
				Holding:  bobHolding,
				Custody:  requestedCustody,
			},
		}))
		return errors.Wrap(err, "fund requested")
	})

	assertBalance(t, runner, aliceHolding, 0)
	assertBalance(t, runner, offeredCustody, 1)
	assertBalance(t, runner, requestedCustody, 1)

	runner.InBlock(func(txs weavetest.TxRunner) error {
		return txs.DeliverTx(carol.sign(t, settle()))
	})

	assertBalance(t, runner, offeredCustody, 0)
	assertBalance(t, runner, requestedCustody, 0)
	assertBalance(t, runner, aliceInbox, 1)
	assertBalance(t, runner, bobInbox, 1)

	escrows, err := runner.Query("/escrows/offerer", alice.address())
	assert.Nil(t, err)
	assert.Equal(t, 1, len(escrows))
	var e swap.Escrow
	assert.Nil(t, e.Unmarshal(escrows[0].Value))
	assert.Equal(t, bob.address(), e.RequestingParty)
}

func assertBalance(t *testing.T, runner *weavetest.AppRunner, addr nftswap.Address, want uint64) {
	t.Helper()

	models, err := runner.Query("/accounts", addr)
	assert.Nil(t, err)
	if len(models) != 1 {
		t.Fatalf("want one account %s, got %d", addr, len(models))
	}
	var acc tokens.Account
	assert.Nil(t, acc.Unmarshal(models[0].Value))
	assert.Equal(t, want, acc.Amount)
}

func TestTxGetMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		wantErr *errors.Error
	}{
		"single message": {
			tx:      Tx{CloseMsg: &swap.CloseMsg{Metadata: meta}},
			wantErr: nil,
		},
		"no message": {
			tx:      Tx{},
			wantErr: errors.ErrMsg,
		},
		"two messages": {
			tx: Tx{
				CloseMsg:  &swap.CloseMsg{Metadata: meta},
				SettleMsg: &swap.SettleMsg{Metadata: meta},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil && msg == nil {
				t.Fatal("no message returned")
			}
		})
	}
}

func TestTxSignBytes(t *testing.T) {
	alice := newSigner()
	tx := &Tx{CloseMsg: &swap.CloseMsg{Metadata: meta}}

	unsigned, err := tx.GetSignBytes()
	assert.Nil(t, err)

	alice.sign(t, tx)
	assert.Equal(t, 1, len(tx.Signatures))

	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, unsigned, signed)

	raw, err := tx.Marshal()
	assert.Nil(t, err)
	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, "swap/close", msg.Path())

	_, err = TxDecoder([]byte{0xff, 0xff})
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected decode error: %+v", err)
	}
}
