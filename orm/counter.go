package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// Counter maintains a monotonic uint64 value stored under a single key.
// The value is encoded as 8 bytes big endian so that the raw
// representation orders the same way as the numbers do.
type Counter struct {
	key []byte
}

// NewCounter returns a counter stored under "<bucket>:<name>".
func NewCounter(bucket, name string) Counter {
	return Counter{key: []byte(bucket + ":" + name)}
}

// Value returns the current state of the counter. A counter that was never
// incremented is zero.
func (c Counter) Value(db cattery.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(c.key)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read counter")
	}
	return decodeCounter(raw)
}

// Increment adds one to the counter and returns the new value. It fails
// with ErrOverflow when the counter reached its maximum, leaving the
// stored value untouched.
func (c Counter) Increment(db cattery.KVStore) (uint64, error) {
	val, err := c.Value(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "counter")
	}
	val++
	if err := db.Set(c.key, encodeCounter(val)); err != nil {
		return 0, errors.Wrap(err, "cannot write counter")
	}
	return val, nil
}

// Set overwrites the counter value.
func (c Counter) Set(db cattery.KVStore, val uint64) error {
	return db.Set(c.key, encodeCounter(val))
}

func decodeCounter(raw []byte) (uint64, error) {
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "counter must be 8 bytes, got %d", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

func encodeCounter(val uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, val)
	return raw
}
