package weavetest

import "github.com/iov-one/nftswap"

// Handler is a mock implementation of the nftswap.Handler interface.
//
// Results and errors are returned as configured. Each method call is
// counted, regardless of the result.
type Handler struct {
	checkCall   int
	CheckResult nftswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult nftswap.DeliverResult
	DeliverErr    error
}

var _ nftswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler is a handler that writes the key value pair to the store
// before returning Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ nftswap.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, h.Err
}
