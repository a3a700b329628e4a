package utils

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

type phase uint8

const (
	checkPhase phase = 1 << iota
	deliverPhase
)

// Savepoint runs the rest of the stack in a cache that is written only
// when it succeeds. A failed transaction leaves no state behind, except
// what was written by the decorators in front of the savepoint.
type Savepoint struct {
	phases phase
}

var _ cattery.Decorator = Savepoint{}

// NewSavepoint returns a savepoint active on no phase. Enable it with
// OnCheck and OnDeliver.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.phases |= checkPhase
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.phases |= deliverPhase
	return s
}

func (s Savepoint) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Checker) (*cattery.CheckResult, error) {
	var res *cattery.CheckResult
	err := s.isolate(ctx, checkPhase, db, func(db cattery.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Deliverer) (*cattery.DeliverResult, error) {
	var res *cattery.DeliverResult
	err := s.isolate(ctx, deliverPhase, db, func(db cattery.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls run on a cache of db when the savepoint is active for p.
// A store that cannot be cached is used directly.
func (s Savepoint) isolate(ctx cattery.Context, p phase, db cattery.KVStore, run func(cattery.KVStore) error) error {
	cacheable, ok := db.(cattery.CacheableKVStore)
	if s.phases&p == 0 || !ok {
		return run(db)
	}

	cache := cacheable.CacheWrap()
	if err := run(cache); err != nil {
		cache.Discard()
		height, _ := cattery.GetHeight(ctx)
		cattery.GetLogger(ctx).Debug("savepoint rolled back", "height", height, "err", err)
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write savepoint")
	}
	return nil
}
