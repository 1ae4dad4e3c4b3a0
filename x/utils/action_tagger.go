package utils

import (
	"github.com/iov-one/nftswap"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is used by ActionTagger as the key of the tag it appends.
const ActionKey = "action"

// ActionTagger inspects the message being executed and adds a tag
// `action = msg.Path()` to every successful delivery, so that clients can
// search or subscribe to a specific operation, for example all settlements.
type ActionTagger struct{}

var _ nftswap.Decorator = ActionTagger{}

// NewActionTagger creates an ActionTagger decorator.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along.
func (ActionTagger) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
