package gconf

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/weavetest/assert"
)

type updateMsg struct {
	weavetest.Msg
	Patch *testConfig
}

func (m *updateMsg) Path() string { return "test/update_configuration" }

func (m *updateMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

func TestUpdateConfiguration(t *testing.T) {
	owner := weavetest.NewCondition()
	newOwner := weavetest.RandomAddr(t)

	initial := &testConfig{
		Metadata: &nftswap.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Text:     "initial",
		Number:   1,
	}

	cases := map[string]struct {
		signer  nftswap.Condition
		patch   *testConfig
		wantErr *errors.Error
		want    *testConfig
	}{
		"owner updates one field": {
			signer: owner,
			patch:  &testConfig{Number: 7},
			want: &testConfig{
				Metadata: &nftswap.Metadata{Schema: 1},
				Owner:    owner.Address(),
				Text:     "initial",
				Number:   7,
			},
		},
		"owner hands over ownership": {
			signer: owner,
			patch:  &testConfig{Owner: newOwner},
			want: &testConfig{
				Metadata: &nftswap.Metadata{Schema: 1},
				Owner:    newOwner,
				Text:     "initial",
				Number:   1,
			},
		},
		"stranger cannot update": {
			signer:  weavetest.NewCondition(),
			patch:   &testConfig{Number: 7},
			wantErr: errors.ErrUnauthorized,
			want:    initial,
		},
		"invalid result is rejected": {
			signer:  owner,
			patch:   &testConfig{Owner: nftswap.Address("short")},
			wantErr: errors.ErrInput,
			want:    initial,
		},
		"missing patch": {
			signer:  owner,
			wantErr: errors.ErrEmpty,
			want:    initial,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			assert.Nil(t, Save(db, "test", initial))

			h := NewUpdateConfigurationHandler("test", &testConfig{}, &weavetest.Auth{Signer: tc.signer})
			tx := &weavetest.Tx{Msg: &updateMsg{Patch: tc.patch}}

			cache := db.CacheWrap()
			_, err := h.Deliver(context.Background(), cache, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if err == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			var got testConfig
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, tc.want, &got)
		})
	}
}
