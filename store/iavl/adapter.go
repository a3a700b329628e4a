package iavl

import (
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// DefaultCacheSize is the number of tree nodes kept in memory.
	DefaultCacheSize = 10000

	// DefaultHistorySize is the number of committed versions that are
	// kept on disk. Older versions are pruned.
	DefaultHistorySize = 20
)

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree       *iavl.MutableTree
	numHistory int64
	lastCommit store.CommitID
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing
func NewCommitStore(path, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "cannot open %s/%s: %s", path, name, err)
	}
	return NewCommitStoreFromDB(db), nil
}

// NewCommitStoreFromDB creates a new store on top of the given database.
// Use it with dbm.NewMemDB for an in memory merkle store.
func NewCommitStoreFromDB(db dbm.DB) *CommitStore {
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return &CommitStore{
		tree:       tree,
		numHistory: DefaultHistorySize,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	version := s.lastCommit.Version
	if version == 0 {
		return nil, nil
	}
	_, val := s.tree.GetVersioned(key, version)
	return val, nil
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	// release an old version of history
	if s.numHistory > 0 && s.numHistory < version {
		toRelease := version - s.numHistory
		if s.tree.VersionExists(toRelease) {
			if err := s.tree.DeleteVersion(toRelease); err != nil {
				return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
			}
		}
	}

	s.lastCommit = store.CommitID{
		Version: version,
		Hash:    hash,
	}
	return s.lastCommit, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	version, err := s.tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	s.lastCommit = store.CommitID{
		Version: version,
		Hash:    s.tree.Hash(),
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return s.lastCommit, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Writing the cache moves the changes into the working tree, they are
// persisted by the next Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a store that reads and writes the working tree directly.
func (s *CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: &adapter{tree: s.tree}}
}

// adapter exposes the working tree as a KVStore.
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = (*adapter)(nil)

// Get returns nil iff key doesn't exist. Panics on nil key.
func (a *adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (a *adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a *adapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (a *adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (a *adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (a *adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, true), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (a *adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, false), nil
}

func (a *adapter) collect(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	a.tree.IterateRange(start, end, ascending, func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
