package app

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore. It
// reads the committed state through the raw store query registered
// under "/".
type ABCIStore struct {
	app abci.Application
}

var _ cattery.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore returns a store reading from given application.
func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
// This can be wrapped with a bucket to reuse key/index/parse logic
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	var value ResultSet
	if err := cattery.Unmarshal(query.Value, &value); err != nil {
		return nil, errors.Wrap(err, "unmarshal result set")
	}
	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return len(val) > 0, err
}

// Iterator attempts to do a range iteration over the store.
// Only the prefix query is supported by the abci server, so
// this client only supports listing everything.
func (a *ABCIStore) Iterator(start, end []byte) (cattery.Iterator, error) {
	models, err := a.all(start, end)
	if err != nil {
		return nil, err
	}
	return store.NewSliceIterator(models), nil
}

// ReverseIterator lists everything in descending key order.
func (a *ABCIStore) ReverseIterator(start, end []byte) (cattery.Iterator, error) {
	models, err := a.all(start, end)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return store.NewSliceIterator(models), nil
}

func (a *ABCIStore) all(start, end []byte) ([]cattery.Model, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrHuman, "iterator only implemented for entire range")
	}
	query := a.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	var k, v ResultSet
	if err := cattery.Unmarshal(query.Key, &k); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := cattery.Unmarshal(query.Value, &v); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}
