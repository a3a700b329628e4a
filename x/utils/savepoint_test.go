package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest"
	"github.com/iov-one/cattery/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    cattery.Decorator
		handler cattery.Handler
		check   bool // whether to call Check or Deliver
		isError bool

		written [][]byte // keys to find
		missing [][]byte // keys not to find
	}{
		"savepoint deactivated, returns error, both written": {
			save:    NewSavepoint(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok, nk},
		},
		"savepoint activated, returns error, one written": {
			save:    NewSavepoint().OnCheck(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint activated for deliver, returns error, one written": {
			save:    NewSavepoint().OnDeliver(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint check does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok, nk},
		},
		"no rollback when success returned": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &catterytest.WriteHandler{Key: nk, Value: nv},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}

			if tc.isError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%x", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%x", k)
			}
		})
	}
}
