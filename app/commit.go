package app

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// chainIDKey holds the chain ID written at genesis. The "_ct:" prefix is
// reserved for application data that belongs to no extension.
const chainIDKey = "_ct:chainID"

// CommitStore wraps the committed state with one cache for delivered
// transactions and one for checked transactions. Only the deliver cache
// reaches the committed state.
type CommitStore struct {
	committed cattery.CommitKVStore
	deliver   cattery.KVCacheWrap
	check     cattery.KVCacheWrap
	chainID   string
}

// NewCommitStore opens the latest committed version and reads the chain
// ID, which is empty before genesis.
func NewCommitStore(committed cattery.CommitKVStore) (*CommitStore, error) {
	if err := committed.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	raw, err := committed.Get([]byte(chainIDKey))
	if err != nil {
		return nil, errors.Wrap(err, "load chain id")
	}
	cs := &CommitStore{committed: committed, chainID: string(raw)}
	cs.resetCaches()
	return cs, nil
}

func (cs *CommitStore) resetCaches() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// ChainID returns the chain ID of the genesis, or an empty string.
func (cs *CommitStore) ChainID() string {
	return cs.chainID
}

// SetChainID writes the chain ID into the deliver cache. It can be set
// only once in the life of a chain.
func (cs *CommitStore) SetChainID(chainID string) error {
	if !cattery.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	if cs.chainID != "" {
		return errors.Wrapf(errors.ErrUnauthorized, "chain id already set to %q", cs.chainID)
	}
	if err := cs.deliver.Set([]byte(chainIDKey), []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	cs.chainID = chainID
	return nil
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (cattery.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit writes the deliver cache, drops the check cache and persists a
// new version. Both caches start again from the new version.
func (cs *CommitStore) Commit() (cattery.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return cattery.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.resetCaches()
	return id, nil
}

// CheckStore is the state CheckTx runs against.
func (cs *CommitStore) CheckStore() cattery.CacheableKVStore {
	return cs.check
}

// DeliverStore is the state DeliverTx, InitChain and BeginBlock write to.
func (cs *CommitStore) DeliverStore() cattery.CacheableKVStore {
	return cs.deliver
}
