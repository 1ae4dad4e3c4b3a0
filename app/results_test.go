package app_test

import (
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/weavetest/assert"
)

func TestJoinResults(t *testing.T) {
	models := []nftswap.Model{
		nftswap.Pair([]byte("alice"), []byte("offered")),
		nftswap.Pair([]byte("bob"), []byte("requested")),
	}

	keys := app.ResultsFromKeys(models)
	values := app.ResultsFromValues(models)

	rawKeys, err := keys.Marshal()
	assert.Nil(t, err)
	var gotKeys app.ResultSet
	assert.Nil(t, gotKeys.Unmarshal(rawKeys))

	joined, err := app.JoinResults(&gotKeys, values)
	assert.Nil(t, err)
	assert.Equal(t, models, joined)

	_, err = app.JoinResults(keys, &app.ResultSet{Results: [][]byte{[]byte("one")}})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestUnmarshalOneResult(t *testing.T) {
	want := crypto.PublicKey{Ed25519: []byte("a fake key of any length is fine")}
	raw, err := want.Marshal()
	assert.Nil(t, err)

	set, err := (&app.ResultSet{Results: [][]byte{raw}}).Marshal()
	assert.Nil(t, err)

	var got crypto.PublicKey
	assert.Nil(t, app.UnmarshalOneResult(set, &got))
	assert.Equal(t, want.Ed25519, got.Ed25519)

	empty, err := (&app.ResultSet{}).Marshal()
	assert.Nil(t, err)
	var none crypto.PublicKey
	assert.Nil(t, app.UnmarshalOneResult(empty, &none))
	assert.Equal(t, 0, len(none.Ed25519))
}
