package swap

import (
	"testing"

	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
)

func TestEscrowCondition(t *testing.T) {
	offered := weavetest.RandomAddr(t)
	requested := weavetest.RandomAddr(t)

	cond, bump, err := EscrowCondition(offered, requested)
	assert.Nil(t, err)

	again, againBump, err := EscrowCondition(offered, requested)
	assert.Nil(t, err)
	assert.Equal(t, cond, again)
	assert.Equal(t, bump, againBump)

	// The order of holdings matters.
	reversed, _, err := EscrowCondition(requested, offered)
	assert.Nil(t, err)
	if cond.Equals(reversed) {
		t.Fatal("reversed holdings must derive another escrow")
	}

	authority, err := escrowAuthority(cond.Address(), uint32(bump), offered, requested)
	assert.Nil(t, err)
	assert.Equal(t, cond, authority)

	_, err = escrowAuthority(cond.Address(), uint32(bump)^1, offered, requested)
	assert.IsErr(t, ErrAccountIdentityMismatch, err)

	_, err = escrowAuthority(cond.Address(), 256, offered, requested)
	assert.IsErr(t, ErrAccountIdentityMismatch, err)

	_, err = escrowAuthority(weavetest.RandomAddr(t), uint32(bump), offered, requested)
	assert.IsErr(t, ErrAccountIdentityMismatch, err)
}

func TestCustodyAddress(t *testing.T) {
	holding := weavetest.RandomAddr(t)

	offered, err := CustodyAddress(offeredSide, holding)
	assert.Nil(t, err)
	requested, err := CustodyAddress(requestedSide, holding)
	assert.Nil(t, err)
	if offered.Equals(requested) {
		t.Fatal("each side must have its own custody account")
	}
	assert.Nil(t, offered.Validate())

	again, err := CustodyAddress(offeredSide, holding)
	assert.Nil(t, err)
	assert.Equal(t, offered, again)
}
