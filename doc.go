/*
Package nftswap defines the common interfaces that tie together the
application, its middleware and the extensions, together with the few
primitives every extension shares: conditions, addresses, the block context
and the results returned to the consensus engine.

The swap logic itself lives in x/swap and the asset ledger it moves assets
on lives in x/tokens. Both are wired into a runnable node by cmd/swapd.

Data is passed between the app, decorators and handlers through
context.Context. For every value T that is kept in the context there is a
pair of functions:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set, so that a lower level module
cannot overwrite what was established by the app (eg. height, chain id).
*/
package nftswap
