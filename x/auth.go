package x

import (
	"github.com/iov-one/nftswap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. It should be passed into the constructor of handlers, so
// that another authentication system can be plugged in.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled. You may want the
	// GetAddresses helper.
	GetConditions(nftswap.Context) []nftswap.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(nftswap.Context, nftswap.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	var res []nftswap.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true if any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx nftswap.Context, auth Authenticator) []nftswap.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]nftswap.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx nftswap.Context, auth Authenticator) nftswap.Condition {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil
	}
	return conds[0]
}

// HasAllAddresses returns true if all elements in required are also in the
// context.
func HasAllAddresses(ctx nftswap.Context, auth Authenticator, required []nftswap.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasAllConditions returns true if all elements in required are also in the
// context.
func HasAllConditions(ctx nftswap.Context, auth Authenticator, required []nftswap.Condition) bool {
	return HasNConditions(ctx, auth, required, len(required))
}

// HasNConditions returns true if at least n elements in requested are also
// in the context.
func HasNConditions(ctx nftswap.Context, auth Authenticator, requested []nftswap.Condition, n int) bool {
	if n <= 0 {
		return true
	}
	conds := auth.GetConditions(ctx)
	for _, r := range requested {
		if hasCondition(conds, r) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}

func hasCondition(conds []nftswap.Condition, want nftswap.Condition) bool {
	for _, c := range conds {
		if c.Equals(want) {
			return true
		}
	}
	return false
}
