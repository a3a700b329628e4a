package store

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/iov-one/cattery/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreConstructor returns an empty store and a function releasing
// its resources.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// TestSuite checks that a CacheableKVStore and the caches layered on it
// behave the same way whatever the storage. It is run by the btree and
// the iavl stores.
type TestSuite struct {
	makeBase TestStoreConstructor
}

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// Run executes every check of the suite as a subtest.
func (s *TestSuite) Run(t *testing.T) {
	t.Run("write and discard caches", s.writeAndDiscard)
	t.Run("cache shadows parent", s.cacheShadowsParent)
	t.Run("iterate merged ranges", s.iterateMerged)
	t.Run("iterate random keys", s.iterateRandom)
}

func (s *TestSuite) writeAndDiscard(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	owner, kitty := []byte("owner:alice"), []byte("kitty:0a")
	assertGetHas(t, base, owner, nil)
	require.NoError(t, base.Set(owner, []byte("1")))
	assertGetHas(t, base, owner, []byte("1"))

	cache := base.CacheWrap()
	assertGetHas(t, cache, owner, []byte("1"))
	require.NoError(t, cache.Set(kitty, []byte("alice")))
	assertGetHas(t, cache, kitty, []byte("alice"))
	assertGetHas(t, base, kitty, nil)
	require.NoError(t, cache.Write())
	assertGetHas(t, base, kitty, []byte("alice"))

	discarded := base.CacheWrap()
	require.NoError(t, discarded.Set([]byte("kitty:0b"), []byte("bob")))
	require.NoError(t, discarded.Delete(kitty))
	discarded.Discard()
	assertGetHas(t, base, kitty, []byte("alice"))
	assertGetHas(t, base, []byte("kitty:0b"), nil)

	// A later cache sees writes of an earlier one that was written.
	sold := base.CacheWrap()
	require.NoError(t, sold.Delete(owner))
	require.NoError(t, sold.Write())
	assertGetHas(t, base.CacheWrap(), owner, nil)
}

func (s *TestSuite) cacheShadowsParent(t *testing.T) {
	parent, cleanup := s.makeBase()
	defer cleanup()

	applyAll(t, parent, SetOp([]byte("kitty:01"), []byte("alice")), SetOp([]byte("kitty:02"), []byte("bob")))

	child := parent.CacheWrap()
	applyAll(t, child,
		SetOp([]byte("kitty:01"), []byte("carol")),
		DelOp([]byte("kitty:02")),
		SetOp([]byte("kitty:03"), []byte("dave")),
	)

	before := map[string][]byte{"kitty:01": []byte("alice"), "kitty:02": []byte("bob"), "kitty:03": nil}
	after := map[string][]byte{"kitty:01": []byte("carol"), "kitty:02": nil, "kitty:03": []byte("dave")}
	for key, want := range before {
		assertGetHas(t, parent, []byte(key), want)
	}
	for key, want := range after {
		assertGetHas(t, child, []byte(key), want)
	}

	require.NoError(t, child.Write())
	for key, want := range after {
		assertGetHas(t, parent, []byte(key), want)
	}
}

func (s *TestSuite) iterateMerged(t *testing.T) {
	a := Model{Key: []byte("kitty:0a"), Value: []byte("alice")}
	a2 := Model{Key: a.Key, Value: []byte("alice2")}
	b := Model{Key: []byte("kitty:0b"), Value: []byte("bob")}
	b2 := Model{Key: b.Key, Value: []byte("bob2")}
	c := Model{Key: []byte("kitty:0c"), Value: []byte("carol")}
	d := Model{Key: []byte("kitty:0d"), Value: []byte("dave")}

	cases := map[string]iterCase{
		"child only": {
			child: setOps(a, b, c),
			queries: []rangeQuery{
				{want: []Model{a, b, c}},
				{start: b.Key, end: c.Key, want: []Model{b}},
				{reverse: true, want: []Model{c, b, a}},
			},
		},
		"parent only": {
			parent: setOps(a, b, c),
			queries: []rangeQuery{
				{want: []Model{a, b, c}},
				{start: b.Key, want: []Model{b, c}},
				{end: b.Key, reverse: true, want: []Model{a}},
			},
		},
		"child overrides parent values": {
			parent: setOps(a, b, c),
			child:  setOps(a2, b2, d),
			queries: []rangeQuery{
				{want: []Model{a2, b2, c, d}},
				{start: b.Key, end: d.Key, want: []Model{b2, c}},
				{reverse: true, want: []Model{d, c, b2, a2}},
			},
		},
		"child deletes hide parent values": {
			parent: setOps(a, c, d),
			child:  delOps(a, b, d),
			queries: []rangeQuery{
				{want: []Model{c}},
				{end: c.Key},
				{reverse: true, want: []Model{c}},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

func (s *TestSuite) iterateRandom(t *testing.T) {
	const size = 50
	r := rand.New(rand.NewSource(1))

	parentSet := randomModels(r, "p", size)
	childSet := randomModels(r, "c", size)
	all := sortModels(append(append([]Model{}, parentSet...), childSet...))

	// Deleting keys that were never written must not show up.
	child := append(setOps(childSet...), delOps(randomModels(r, "x", 10)...)...)

	tc := iterCase{
		parent: setOps(parentSet...),
		child:  child,
		queries: []rangeQuery{
			{want: all},
			{start: all[10].Key, want: all[10:]},
			{end: all[size-8].Key, want: all[:size-8]},
			{start: all[17].Key, end: all[28].Key, want: all[17:28]},
			{reverse: true, want: reverse(all)},
			{start: all[34].Key, reverse: true, want: reverse(all[34:])},
			{start: all[6].Key, end: all[26].Key, reverse: true, want: reverse(all[6:26])},
		},
	}

	base, cleanup := s.makeBase()
	defer cleanup()
	tc.verify(t, base)
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got, "get %s", key)
	has, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want != nil, has, "has %s", key)
}

func applyAll(t testing.TB, kv SetDeleter, ops ...Op) {
	t.Helper()
	for _, op := range ops {
		require.NoError(t, op.Apply(kv))
	}
}

// randomModels returns count models with unique keys behind prefix.
func randomModels(r *rand.Rand, prefix string, count int) []Model {
	models := make([]Model, count)
	for i, n := range r.Perm(count * 10)[:count] {
		value := make([]byte, 8)
		r.Read(value)
		models[i] = Model{Key: []byte(fmt.Sprintf("%s:%04d", prefix, n)), Value: value}
	}
	return models
}

type iterCase struct {
	parent  []Op
	child   []Op
	queries []rangeQuery
}

// rangeQuery lists the models expected between start and end.
type rangeQuery struct {
	start   []byte
	end     []byte
	reverse bool
	want    []Model
}

func (i iterCase) verify(t testing.TB, base CacheableKVStore) {
	t.Helper()
	applyAll(t, base, i.parent...)
	child := base.CacheWrap()
	applyAll(t, child, i.child...)

	for _, q := range i.queries {
		var iter Iterator
		var err error
		if q.reverse {
			iter, err = child.ReverseIterator(q.start, q.end)
		} else {
			iter, err = child.Iterator(q.start, q.end)
		}
		require.NoError(t, err)

		for n, want := range q.want {
			key, value, err := iter.Next()
			require.NoError(t, err)
			if !bytes.Equal(want.Key, key) {
				t.Fatalf("item %d: want key %s, got %s", n, want.Key, key)
			}
			assert.Equal(t, want.Value, value)
		}
		if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
			t.Fatalf("want iterator done, got %+v", err)
		}
		iter.Release()
	}
}

func reverse(models []Model) []Model {
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}

func sortModels(models []Model) []Model {
	res := append([]Model{}, models...)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func setOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func delOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
