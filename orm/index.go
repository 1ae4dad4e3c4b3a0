package orm

import (
	"bytes"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Index is a secondary index of the entities stored in a bucket.
type Index interface {
	nftswap.QueryHandler

	// Name returns the name of this index.
	Name() string

	// Update updates the index. It must be called whenever an entity of
	// the bucket changes.
	//
	// prev == nil means insert
	// save == nil means delete
	// if both != nil, both must have the same key
	Update(db nftswap.KVStore, prev Object, save Object) error

	// GetAt returns the primary keys of all entities indexed under the
	// given value.
	GetAt(db nftswap.ReadOnlyKVStore, value []byte) ([][]byte, error)
}

// Indexer calculates the secondary index value for a given object. A nil
// value leaves the object out of the index.
type Indexer func(Object) ([]byte, error)

const indexPrefix = "_i."

// compactIndex stores all primary keys indexed under one value in a single
// database entry. A unique index stores the primary key itself, a non unique
// one a serialized MultiRef. This is fine as long as only a few entities
// share a value, which holds for owners and escrow parties.
type compactIndex struct {
	name    string
	id      []byte
	unique  bool
	indexer Indexer
	refKey  func([]byte) []byte
}

var _ Index = compactIndex{}

// NewIndex constructs an index. refKey calculates the database key of the
// entity for a primary key, so that queries can return entities.
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return compactIndex{
		name:    name,
		id:      []byte(indexPrefix + name + ":"),
		unique:  unique,
		indexer: indexer,
		refKey:  refKey,
	}
}

func (i compactIndex) Name() string {
	return i.name
}

func (i compactIndex) indexKey(value []byte) []byte {
	out := make([]byte, len(i.id)+len(value))
	copy(out, i.id)
	copy(out[len(i.id):], value)
	return out
}

func (i compactIndex) Update(db nftswap.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		value, err := i.indexer(save)
		if err != nil {
			return err
		}
		return i.insert(db, value, save.Key())
	case save == nil:
		value, err := i.indexer(prev)
		if err != nil {
			return err
		}
		return i.remove(db, value, prev.Key())
	}

	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an entity")
	}
	oldValue, err := i.indexer(prev)
	if err != nil {
		return err
	}
	newValue, err := i.indexer(save)
	if err != nil {
		return err
	}
	if bytes.Equal(oldValue, newValue) {
		return nil
	}
	if err := i.remove(db, oldValue, prev.Key()); err != nil {
		return err
	}
	return i.insert(db, newValue, save.Key())
}

func (i compactIndex) insert(db nftswap.KVStore, value, pk []byte) error {
	if value == nil {
		return nil
	}
	key := i.indexKey(value)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}

	if i.unique {
		if raw != nil && !bytes.Equal(raw, pk) {
			return errors.Wrapf(errors.ErrDuplicate, "index %s", i.name)
		}
		return db.Set(key, pk)
	}

	refs, err := i.loadRefs(raw)
	if err != nil {
		return err
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	bz, err := refs.Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return db.Set(key, bz)
}

func (i compactIndex) remove(db nftswap.KVStore, value, pk []byte) error {
	if value == nil {
		return nil
	}
	key := i.indexKey(value)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "index %s", i.name)
	}

	if i.unique {
		if !bytes.Equal(raw, pk) {
			return errors.Wrapf(errors.ErrState, "index %s points to another entity", i.name)
		}
		return db.Delete(key)
	}

	refs, err := i.loadRefs(raw)
	if err != nil {
		return err
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(key)
	}
	bz, err := refs.Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return db.Set(key, bz)
}

func (i compactIndex) loadRefs(raw []byte) (*MultiRef, error) {
	var refs MultiRef
	if raw == nil {
		return &refs, nil
	}
	if err := refs.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "index %s: %s", i.name, err)
	}
	return &refs, nil
}

func (i compactIndex) GetAt(db nftswap.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	raw, err := db.Get(i.indexKey(value))
	if err != nil || raw == nil {
		return nil, err
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	refs, err := i.loadRefs(raw)
	if err != nil {
		return nil, err
	}
	return refs.Refs, nil
}

// Query returns the entities indexed under the value given as data. The
// prefix modifier returns the entities of all values starting with data.
func (i compactIndex) Query(db nftswap.ReadOnlyKVStore, mod string, data []byte) ([]nftswap.Model, error) {
	switch mod {
	case nftswap.KeyQueryMod:
		refs, err := i.GetAt(db, data)
		if err != nil {
			return nil, err
		}
		return i.loadEntities(db, refs)
	case nftswap.PrefixQueryMod:
		entries, err := queryPrefix(db, i.indexKey(data))
		if err != nil {
			return nil, err
		}
		var res []nftswap.Model
		for _, e := range entries {
			refs, err := i.GetAt(db, e.Key[len(i.id):])
			if err != nil {
				return nil, err
			}
			models, err := i.loadEntities(db, refs)
			if err != nil {
				return nil, err
			}
			res = append(res, models...)
		}
		return res, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

func (i compactIndex) loadEntities(db nftswap.ReadOnlyKVStore, refs [][]byte) ([]nftswap.Model, error) {
	res := make([]nftswap.Model, 0, len(refs))
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, nftswap.Pair(key, value))
	}
	return res, nil
}
