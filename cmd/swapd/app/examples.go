package app

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/commands"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/swap"
	"github.com/iov-one/nftswap/x/tokens"
)

// Examples generates some example structs to dump out with testgen.
func Examples() []commands.Example {
	alice := crypto.PrivKeyEd25519FromSeed(seed(1))
	bob := crypto.PrivKeyEd25519FromSeed(seed(2))
	aliceHolding := tokens.AccountCondition(alice.PublicKey().Address(), "PUNK1", nil).Address()
	bobHolding := tokens.AccountCondition(bob.PublicKey().Address(), "APE22", nil).Address()

	cond, bump, err := swap.EscrowCondition(aliceHolding, bobHolding)
	if err != nil {
		panic(err)
	}
	offeredCustody, err := swap.CustodyAddress("offered", aliceHolding)
	if err != nil {
		panic(err)
	}
	requestedCustody, err := swap.CustodyAddress("requested", bobHolding)
	if err != nil {
		panic(err)
	}

	meta := &nftswap.Metadata{Schema: 1}
	initMsg := &swap.InitMsg{
		Metadata:           meta,
		Offerer:            alice.PublicKey().Address(),
		Requester:          bob.PublicKey().Address(),
		OfferedAssetType:   "PUNK1",
		RequestedAssetType: "APE22",
		OfferedHolding:     aliceHolding,
		RequestedHolding:   bobHolding,
	}
	fundMsg := &swap.FundOfferedMsg{
		Metadata: meta,
		Escrow:   cond.Address(),
		Holding:  aliceHolding,
		Custody:  offeredCustody,
	}
	settleMsg := &swap.SettleMsg{
		Metadata:             meta,
		Bump:                 uint32(bump),
		Escrow:               cond.Address(),
		OfferedHolding:       aliceHolding,
		RequestedHolding:     bobHolding,
		OfferedCustody:       offeredCustody,
		RequestedCustody:     requestedCustody,
		OfferedDestination:   tokens.AccountCondition(bob.PublicKey().Address(), "PUNK1", nil).Address(),
		RequestedDestination: tokens.AccountCondition(alice.PublicKey().Address(), "APE22", nil).Address(),
	}
	escrow := &swap.Escrow{
		Metadata:           meta,
		OfferingParty:      initMsg.Offerer,
		RequestingParty:    initMsg.Requester,
		OfferedAssetType:   initMsg.OfferedAssetType,
		RequestedAssetType: initMsg.RequestedAssetType,
		OfferedCustody:     offeredCustody,
		RequestedCustody:   requestedCustody,
	}

	unsigned := &Tx{InitMsg: initMsg}
	signed := &Tx{InitMsg: initMsg}
	sig, err := sigs.SignTx(alice, signed, "test-chain", 0)
	if err != nil {
		panic(err)
	}
	signed.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "pub_key", Obj: alice.PublicKey()},
		{Filename: "priv_key", Obj: alice},
		{Filename: "init_msg", Obj: initMsg},
		{Filename: "fund_offered_msg", Obj: fundMsg},
		{Filename: "settle_msg", Obj: settleMsg},
		{Filename: "escrow", Obj: escrow},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: signed},
	}
}

func seed(b byte) []byte {
	s := make([]byte, 32)
	s[0] = b
	return s
}
