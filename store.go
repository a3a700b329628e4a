package cattery

// ReadOnlyKVStore reads the state. Get returns nil for a missing key.
//
// Iterators cover [start, end) and a nil bound is open. The range must not
// be written to while an iterator over it is alive.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Iterator(start, end []byte) (Iterator, error)
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write side shared by stores and batches. Callers must
// not modify a key or value after handing it over.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the state a handler reads and writes.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch queues writes until Write applies them.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator walks a key range. Next returns ErrIteratorDone once the range
// is exhausted:
//
//	it, err := db.Iterator(start, end)
//	...
//	defer it.Release()
//	for {
//		key, value, err := it.Next()
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
type Iterator interface {
	Next() (key, value []byte, err error)
	Release()
}

// CacheableKVStore can stack a cache on top of itself. Transactions run in
// such a cache, which is written when they succeed and discarded when
// they fail.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap holds writes in memory, visible to its own reads. Write
// pushes them to the parent store, Discard drops them.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the versioned root of the state. It is changed through
// a CacheWrap that is written before Commit persists a new version.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap
	Commit() (CommitID, error)
	// LoadLatestVersion opens the last complete version, even after a
	// crash during a commit.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID is a committed version and the merkle root of its state, the
// app hash of the block.
type CommitID struct {
	Version int64
	Hash    []byte
}
