package store

import "github.com/iov-one/cattery"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = cattery.ReadOnlyKVStore
	SetDeleter       = cattery.SetDeleter
	KVStore          = cattery.KVStore
	Batch            = cattery.Batch
	Iterator         = cattery.Iterator
	CacheableKVStore = cattery.CacheableKVStore
	KVCacheWrap      = cattery.KVCacheWrap
	CommitKVStore    = cattery.CommitKVStore
	CommitID         = cattery.CommitID
	Model            = cattery.Model
)
