package iavl

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

type Model = store.Model
type Op = store.Op

func makeBase() (store.CacheableKVStore, func()) {
	commit, close := makeCommitStore()
	return commit.Adapter(), close
}

func makeCommitStore() (*CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	close := func() { os.RemoveAll(tmpDir) }
	commit, err := NewCommitStore(tmpDir, "base")
	if err != nil {
		close()
		panic(err)
	}
	return commit, close
}

func TestIavlStore(t *testing.T) {
	store.NewTestSuite(makeBase).Run(t)
}

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next adapter
func TestCommitOverwrite(t *testing.T) {
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{store.SetOp(ks[1], vs[1]), store.SetOp(ks[2], vs[2])},
			childOps:      []Op{store.SetOp(ks[1], vs[11]), store.SetOp(ks[3], vs[7]), store.DelOp(ks[2])},
			parentQueries: []Model{cattery.Pair(ks[1], vs[1]), cattery.Pair(ks[2], vs[2]), cattery.Pair(ks[3], nil)},
			childQueries:  []Model{cattery.Pair(ks[1], vs[11]), cattery.Pair(ks[2], nil), cattery.Pair(ks[3], vs[7])},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			commit, close := makeCommitStore()
			defer close()
			// only one to trigger a cleanup
			commit.numHistory = 1

			id, err := commit.LatestVersion()
			require.NoError(t, err)
			assert.Equal(t, int64(0), id.Version)
			assert.Empty(t, id.Hash)

			parent := commit.CacheWrap()
			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}
			// write data to backing store
			require.NoError(t, parent.Write())
			id, err = commit.Commit()
			require.NoError(t, err)
			assert.Equal(t, int64(1), id.Version)
			assert.NotEmpty(t, id.Hash)

			// child also comes from commit
			child := commit.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}

			// and a side-cache wrap to see they are in parallel
			side := commit.CacheWrap()
			for _, q := range tc.parentQueries {
				assertGetHas(t, side, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childQueries {
				assertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			// write child to parent and make sure it also shows proper data
			require.NoError(t, child.Write())
			for _, q := range tc.childQueries {
				assertGetHas(t, side, q.Key, q.Value, q.Value != nil)
			}

			// committed state is only updated on commit
			for _, q := range tc.parentQueries {
				got, err := commit.Get(q.Key)
				require.NoError(t, err)
				assert.Equal(t, q.Value, got)
			}
			id, err = commit.Commit()
			require.NoError(t, err)
			assert.Equal(t, int64(2), id.Version)
			for _, q := range tc.childQueries {
				got, err := commit.Get(q.Key)
				require.NoError(t, err)
				assert.Equal(t, q.Value, got)
			}
		})
	}
}

func TestLoadLatestVersion(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-load-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	first, err := NewCommitStore(tmpDir, "state")
	require.NoError(t, err)
	require.NoError(t, first.LoadLatestVersion())

	cache := first.CacheWrap()
	require.NoError(t, cache.Set([]byte("kitty"), []byte("meow")))
	require.NoError(t, cache.Write())
	want, err := first.Commit()
	require.NoError(t, err)

	// A fresh memory database has no history.
	mem := NewCommitStoreFromDB(dbm.NewMemDB())
	require.NoError(t, mem.LoadLatestVersion())
	id, err := mem.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), id.Version)

	got, err := first.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	val, err := first.Get([]byte("kitty"))
	require.NoError(t, err)
	assert.Equal(t, []byte("meow"), val)
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, size)
		rand.Read(res[i])
	}
	return res
}
