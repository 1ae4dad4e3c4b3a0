package sigs

import (
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignBytes(t *testing.T) {
	raw := []byte("foobar")
	tx := NewStdTx(raw)
	raw2 := []byte("blast")

	chainID := "test-sign-bytes"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	require.NoError(t, err)
	c1a, err := BuildSignBytes(raw, chainID, 17)
	require.NoError(t, err)
	assert.Equal(t, c1, c1a)
	assert.NotEqual(t, raw, c1)
	assert.Len(t, c1, 64)

	// Sign bytes change on tx, chain id and sequence.
	ct, err := BuildSignBytes(raw2, chainID, 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, ct)
	c2, err := BuildSignBytes(raw, chainID+"2", 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
	c3, err := BuildSignBytes(raw, chainID, 18)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)

	_, err = BuildSignBytes(raw, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(raw, "no", 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	cond := priv.PublicKey().Condition()

	chainID := "emo-music-2345"
	raw := []byte("my special valentine")
	tx := NewStdTx(raw)

	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)
	sig2, err := SignTx(priv, tx, chainID, 2)
	require.NoError(t, err)
	sig13, err := SignTx(priv, tx, chainID, 13)
	require.NoError(t, err)

	// Signing is deterministic.
	sig2a, err := SignTx(priv, tx, chainID, 2)
	require.NoError(t, err)
	assert.Equal(t, sig2, sig2a)

	// The first signature must start with sequence zero.
	_, err = VerifySignature(kv, sig1, raw, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = VerifySignature(kv, new(StdSignature), raw, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	signer, err := VerifySignature(kv, sig0, raw, chainID)
	require.NoError(t, err)
	assert.Equal(t, cond, signer)
	signer, err = VerifySignature(kv, sig1, raw, chainID)
	require.NoError(t, err)
	assert.Equal(t, cond, signer)

	next, err := NextNonce(kv, cond.Address())
	require.NoError(t, err)
	assert.Equal(t, int64(2), next)

	// Jumps and replays are rejected.
	_, err = VerifySignature(kv, sig1, raw, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = VerifySignature(kv, sig13, raw, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	// A different chain does not match.
	_, err = VerifySignature(kv, sig2, raw, "metal-chain")
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// A damaged signature does not match.
	copy(sig2.Signature.Ed25519, []byte{42, 17, 99})
	_, err = VerifySignature(kv, sig2, raw, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestVerifyTxSignatures(t *testing.T) {
	kv := store.MemStore()

	priv := crypto.GenPrivKeyEd25519()
	priv2 := crypto.GenPrivKeyEd25519()

	chainID := "hot_summer_days"
	tx := NewStdTx([]byte("ice cream"))
	other := NewStdTx([]byte(chainID))

	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig2, err := SignTx(priv2, tx, chainID, 0)
	require.NoError(t, err)
	badSig, err := SignTx(priv, other, chainID, 0)
	require.NoError(t, err)

	signers, err := VerifyTxSignatures(kv, tx, chainID)
	require.NoError(t, err)
	assert.Empty(t, signers)

	tx.Signatures = []*StdSignature{badSig}
	_, err = VerifyTxSignatures(kv, tx, chainID)
	assert.Error(t, err)

	tx.Signatures = []*StdSignature{sig, sig2}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []nftswap.Condition{
		priv.PublicKey().Condition(),
		priv2.PublicKey().Condition(),
	}, signers)
}
