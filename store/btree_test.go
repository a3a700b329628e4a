package store

import (
	"testing"

	"github.com/iov-one/cattery/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBase() (CacheableKVStore, func()) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}
	return devnull.CacheWrap(), func() {}
}

func TestBTreeStore(t *testing.T) {
	NewTestSuite(makeBase).Run(t)
}

func TestNestedCacheDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("b"), []byte("2")))
	inner := outer.CacheWrap()
	require.NoError(t, inner.Delete([]byte("a")))
	require.NoError(t, inner.Set([]byte("c"), []byte("3")))
	inner.Discard()

	require.NoError(t, outer.Write())

	for key, want := range map[string][]byte{"a": []byte("1"), "b": []byte("2"), "c": nil} {
		got, err := base.Get([]byte(key))
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestCacheShadowsBackingStore(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("kitty"), []byte("meow")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Delete([]byte("kitty")))
	has, err := cache.Has([]byte("kitty"))
	require.NoError(t, err)
	assert.False(t, has)
	got, err := cache.Get([]byte("kitty"))
	require.NoError(t, err)
	assert.Nil(t, got)

	// The backing store is untouched until the cache is written.
	has, err = base.Has([]byte("kitty"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, cache.Write())
	has, err = base.Has([]byte("kitty"))
	require.NoError(t, err)
	assert.False(t, has)

	// A written cache is empty and reads through again.
	require.NoError(t, base.Set([]byte("kitty"), []byte("purr")))
	got, err = cache.Get([]byte("kitty"))
	require.NoError(t, err)
	assert.Equal(t, []byte("purr"), got)
}

func TestLogableStore(t *testing.T) {
	kv, ops := LogableStore()
	require.NoError(t, kv.Set([]byte("kitty"), []byte("meow")))
	require.NoError(t, kv.Delete([]byte("dog")))

	got := ops.ShowOps()
	require.Len(t, got, 2)
	key, value, ok := got[0].IsSetOp()
	assert.True(t, ok)
	assert.Equal(t, []byte("kitty"), key)
	assert.Equal(t, []byte("meow"), value)
	_, _, ok = got[1].IsSetOp()
	assert.False(t, ok)
}

func TestSliceIterator(t *testing.T) {
	data := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}
	iter := NewSliceIterator(data)
	defer iter.Release()

	for _, m := range data {
		key, value, err := iter.Next()
		require.NoError(t, err)
		assert.Equal(t, m.Key, key)
		assert.Equal(t, m.Value, value)
	}
	_, _, err := iter.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}

type failingDeleter struct {
	SetDeleter
}

func (failingDeleter) Delete([]byte) error {
	return errors.Wrap(errors.ErrDatabase, "read only")
}

func TestNonAtomicBatchKeepsFailedOps(t *testing.T) {
	out := MemStore()
	batch := NewNonAtomicBatch(failingDeleter{SetDeleter: out})
	require.NoError(t, batch.Set([]byte("kitty:01"), []byte("alice")))
	require.NoError(t, batch.Delete([]byte("kitty:02")))
	require.NoError(t, batch.Set([]byte("kitty:03"), []byte("bob")))

	err := batch.Write()
	assert.True(t, errors.ErrDatabase.Is(err), "%+v", err)
	assert.Len(t, batch.ShowOps(), 2)

	got, err := out.Get([]byte("kitty:01"))
	require.NoError(t, err)
	assert.Equal(t, []byte("alice"), got)
	has, err := out.Has([]byte("kitty:03"))
	require.NoError(t, err)
	assert.False(t, has)
}
