package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/nftswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// It authenticates any of the referenced conditions. Both Signer and Signers
// are considered.
type Auth struct {
	// Signer is a convenience attribute when authenticating a single
	// condition.
	Signer nftswap.Condition

	// Signers represents an authentication of multiple signers.
	Signers []nftswap.Condition
}

func (a *Auth) GetConditions(nftswap.Context) []nftswap.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface that stores and
// retrieves conditions from the context.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx nftswap.Context, conds ...nftswap.Condition) nftswap.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]nftswap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []nftswap.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
