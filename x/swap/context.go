package swap

import (
	"context"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/x"
)

type contextKey int

const (
	contextKeyEscrow contextKey = iota
)

// withEscrow is private, as only the handlers of this package can act on
// behalf of an escrow, after recomputing its condition.
func withEscrow(ctx nftswap.Context, cond nftswap.Condition) nftswap.Context {
	return context.WithValue(ctx, contextKeyEscrow, cond)
}

// Authenticate authorizes the escrow condition placed on the context by the
// handlers of this package.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the escrow condition, if any.
func (Authenticate) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	val, _ := ctx.Value(contextKeyEscrow).(nftswap.Condition)
	if val == nil {
		return nil
	}
	return []nftswap.Condition{val}
}

// HasAddress returns true if addr is the address of the escrow condition.
func (a Authenticate) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
