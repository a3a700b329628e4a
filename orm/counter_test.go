package orm

import (
	"math"
	"testing"

	"github.com/iov-one/cattery/catterytest/assert"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
)

func TestCounter(t *testing.T) {
	db := store.MemStore()
	c := NewCounter("kittycount", "total")

	val, err := c.Value(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), val)

	for want := uint64(1); want <= 3; want++ {
		got, err := c.Increment(db)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	raw, err := db.Get([]byte("kittycount:total"))
	assert.Nil(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3}, raw)
}

func TestCounterOverflow(t *testing.T) {
	db := store.MemStore()
	c := NewCounter("kittycount", "total")
	assert.Nil(t, c.Set(db, math.MaxUint64))

	_, err := c.Increment(db)
	assert.IsErr(t, errors.ErrOverflow, err)

	val, err := c.Value(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), val)
}

func TestCounterCorrupted(t *testing.T) {
	db := store.MemStore()
	assert.Nil(t, db.Set([]byte("kittycount:total"), []byte{1, 2}))
	_, err := NewCounter("kittycount", "total").Value(db)
	assert.IsErr(t, errors.ErrState, err)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		"empty":         {nil, nil, nil},
		"simple":        {[]byte("ab"), []byte("ab"), []byte("ac")},
		"carry":         {[]byte{1, 0xff}, []byte{1, 0xff}, []byte{2, 0}},
		"all max bytes": {[]byte{0xff, 0xff}, []byte{0xff, 0xff}, nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
