package weavetest

import "github.com/iov-one/nftswap"

// Decorator is a mock implementation of the nftswap.Decorator interface.
//
// Set CheckErr or DeliverErr to force an error response for the
// corresponding method. If error attributes are not set then the wrapped
// handler method is called and its result returned. Each method call is
// counted, regardless of the result.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ nftswap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with a single decorator. It is a minimal
// version of app.ChainDecorators for use in tests.
func Decorate(h nftswap.Handler, d nftswap.Decorator) nftswap.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn nftswap.Handler
	dc nftswap.Decorator
}

func (d *decoratedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
