package orm

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// ConsumeIterator will read all remaining data into an
// array and release the iterator
func ConsumeIterator(itr cattery.Iterator) ([]cattery.Model, error) {
	defer itr.Release()

	var res []cattery.Model
	for {
		key, value, err := itr.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, cattery.Pair(key, value))
	}
}

func queryPrefix(db cattery.ReadOnlyKVStore, prefix []byte) ([]cattery.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into a (start, end) range. The end is nil if
// all bytes of the prefix are 0xff.
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

// RegisterQuery will register a raw store query as "/". It serves both key
// and prefix queries over the whole database.
func RegisterQuery(qr cattery.QueryRouter) {
	qr.Register("/", storeQuery{})
}

type storeQuery struct{}

func (storeQuery) Query(db cattery.ReadOnlyKVStore, mod string, data []byte) ([]cattery.Model, error) {
	switch mod {
	case cattery.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []cattery.Model{cattery.Pair(data, value)}, nil
	case cattery.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
