package utils

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
)

type panicHandler struct{}

func (panicHandler) Check(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.DeliverResult, error) {
	panic("deliver")
}

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()
	ctx := context.Background()
	db := store.MemStore()

	assert.Panics(t, func() { _, _ = h.Check(ctx, db, nil) })

	_, err := r.Check(ctx, db, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "check")

	_, err = r.Deliver(ctx, db, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "deliver")
}
