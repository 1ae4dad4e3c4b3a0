package app

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// cache wraps for deliver and check, and returning useful state info.
type CommitStore struct {
	committed nftswap.CommitKVStore
	deliver   nftswap.KVCacheWrap
	check     nftswap.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets up the
// deliver and check caches.
func NewCommitStore(store nftswap.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (nftswap.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes deliver to the underlying store and commits it to disk. It
// then creates new deliver and check caches.
func (cs *CommitStore) Commit() (nftswap.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return nftswap.CommitID{}, err
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns the store that must be used during the checking phase.
func (cs *CommitStore) CheckStore() nftswap.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store that must be used during the delivery
// phase.
func (cs *CommitStore) DeliverStore() nftswap.CacheableKVStore {
	return cs.deliver
}

// _swap: is a prefix for internal application data.
const chainIDKey = "_swap:chainID"

func loadChainID(kv nftswap.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store. Returns error if already
// set, or invalid.
func saveChainID(kv nftswap.KVStore, chainID string) error {
	if err := nftswap.ValidateChainID(chainID); err != nil {
		return err
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id is set at genesis")
	}
	return kv.Set(k, []byte(chainID))
}
