/*
Package iavl persists the application state in an iavl merkle tree, so that
every committed block has a verifiable app hash.
*/
package iavl

import (
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const cacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing. An empty path keeps
// the state in memory only.
func NewCommitStore(path, name string) *CommitStore {
	var db dbm.DB
	if path == "" {
		db = dbm.NewMemDB()
	} else {
		db = dbm.NewDB(name, dbm.GoLevelDBBackend, path)
	}
	return &CommitStore{tree: iavl.NewMutableTree(db, cacheSize)}
}

// Get returns the value from the working tree. Nil if the key does not
// exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Commit saves the working tree as the next version.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the latest persisted version.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap returns a cache whose Write applies the changes to the working
// tree. The changes are persisted by the next Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return treeStore{tree: s.tree}.CacheWrap()
}

// treeStore exposes the working tree as a KVStore.
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.CacheableKVStore = treeStore{}

func (t treeStore) Get(key []byte) ([]byte, error) {
	_, val := t.tree.Get(key)
	return val, nil
}

func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// NewBatch returns a non atomic batch. The working tree is in memory until
// SaveVersion, so a partial write is never persisted.
func (t treeStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}

func (t treeStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(t, t.NewBatch(), nil)
}

func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	return t.collect(start, end, true), nil
}

func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return t.collect(start, end, false), nil
}

// collect reads the whole range upfront. Iterated ranges are bucket or index
// prefixes, small enough to be kept in memory.
func (t treeStore) collect(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	t.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
