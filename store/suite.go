package store

import (
	"fmt"
	"testing"

	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/weavetest/assert"
)

// TestSuite runs the same storage tests against any CacheableKVStore
// implementation. It is used by the btree tests in this package and by the
// iavl adapter tests.
type TestSuite struct {
	makeBase func() (base CacheableKVStore, cleanup func())
}

// NewTestSuite returns a suite that creates a fresh store for every test
// using the given constructor.
func NewTestSuite(constructor func() (CacheableKVStore, func())) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet checks that writes are visible in the cache they are made in and
// reach the parent only on Write.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("offered"), []byte("ticket")
	AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	AssertGetHas(t, cache, k, v, true)

	k2, v2 := []byte("requested"), []byte("painting")
	assert.Nil(t, cache.Set(k2, v2))
	AssertGetHas(t, cache, k2, v2, true)
	AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	AssertGetHas(t, base, k2, v2, true)

	discarded := base.CacheWrap()
	assert.Nil(t, discarded.Delete(k))
	assert.Nil(t, discarded.Set([]byte("other"), []byte("value")))
	AssertGetHas(t, discarded, k, nil, false)
	discarded.Discard()
	AssertGetHas(t, base, k, v, true)
	AssertGetHas(t, base, []byte("other"), nil, false)

	nested := base.CacheWrap()
	inner := nested.CacheWrap()
	assert.Nil(t, inner.Delete(k2))
	AssertGetHas(t, nested, k2, v2, true)
	assert.Nil(t, inner.Write())
	AssertGetHas(t, nested, k2, nil, false)
	AssertGetHas(t, base, k2, v2, true)
	assert.Nil(t, nested.Write())
	AssertGetHas(t, base, k2, nil, false)
}

// Iterate checks that iterators merge the cached changes with the content
// of the parent store, in both directions and for any range.
func (s *TestSuite) Iterate(t *testing.T) {
	// Keys are sortable, so that expectations can be written by hand.
	key := func(i int) []byte { return []byte(fmt.Sprintf("key-%02d", i)) }
	val := func(i int, tag string) []byte { return []byte(fmt.Sprintf("%s-%d", tag, i)) }

	base, cleanup := s.makeBase()
	defer cleanup()
	for i := 0; i < 10; i += 2 {
		assert.Nil(t, base.Set(key(i), val(i, "parent")))
	}

	child := base.CacheWrap()
	assert.Nil(t, child.Set(key(3), val(3, "child")))
	assert.Nil(t, child.Set(key(4), val(4, "child")))
	assert.Nil(t, child.Delete(key(6)))
	assert.Nil(t, child.Delete(key(7)))
	assert.Nil(t, child.Set(key(11), val(11, "child")))

	all := []Model{
		{Key: key(0), Value: val(0, "parent")},
		{Key: key(2), Value: val(2, "parent")},
		{Key: key(3), Value: val(3, "child")},
		{Key: key(4), Value: val(4, "child")},
		{Key: key(8), Value: val(8, "parent")},
		{Key: key(11), Value: val(11, "child")},
	}

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		want       []Model
	}{
		"everything": {
			want: all,
		},
		"everything reversed": {
			reverse: true,
			want:    reversed(all),
		},
		"from start": {
			start: key(3),
			want:  all[2:],
		},
		"until end": {
			end:  key(8),
			want: all[:4],
		},
		"range": {
			start: key(2),
			end:   key(11),
			want:  all[1:5],
		},
		"range reversed": {
			start:   key(2),
			end:     key(11),
			reverse: true,
			want:    reversed(all[1:5]),
		},
		"range of deleted keys": {
			start: key(5),
			end:   key(8),
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = child.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = child.Iterator(tc.start, tc.end)
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, readAll(t, it))
		})
	}

	assert.Nil(t, child.Write())
	it, err := base.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, all, readAll(t, it))
}

// AssertGetHas fails the test if the store does not hold val under key.
func AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func readAll(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Release()
	var res []Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		assert.Nil(t, err)
		res = append(res, Model{Key: k, Value: v})
	}
}

func reversed(ms []Model) []Model {
	res := make([]Model, len(ms))
	for i, m := range ms {
		res[len(ms)-1-i] = m
	}
	return res
}
