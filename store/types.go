package store

import "github.com/iov-one/nftswap"

// Storage interfaces are declared in the root package, so that extensions
// do not need to import this package. They are aliased for shorter names.
type (
	ReadOnlyKVStore  = nftswap.ReadOnlyKVStore
	SetDeleter       = nftswap.SetDeleter
	KVStore          = nftswap.KVStore
	Batch            = nftswap.Batch
	Iterator         = nftswap.Iterator
	CacheableKVStore = nftswap.CacheableKVStore
	KVCacheWrap      = nftswap.KVCacheWrap
	CommitKVStore    = nftswap.CommitKVStore
	CommitID         = nftswap.CommitID
	Model            = nftswap.Model
)
