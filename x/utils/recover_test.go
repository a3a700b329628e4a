package utils

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	h := catterytest.PanicHandler{Msg: "boom"}
	r := NewRecovery()
	var buf bytes.Buffer
	ctx := cattery.WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = cattery.WithHeight(ctx, 7)
	ctx = cattery.WithTxIndex(ctx, 2)
	kv := store.MemStore()
	tx := &catterytest.Tx{Msg: &catterytest.Msg{RoutePath: "kitty/buy"}}

	assert.Panics(t, func() { _, _ = h.Check(ctx, kv, tx) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, kv, tx) })

	_, err := r.Check(ctx, kv, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "check kitty/buy: boom")

	buf.Reset()
	_, err = r.Deliver(ctx, kv, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))
	for _, want := range []string{"phase=deliver", "path=kitty/buy", "height=7", "index=2", "panic=boom"} {
		assert.Contains(t, buf.String(), want)
	}

	// A missing transaction does not hide the panic.
	_, err = r.Deliver(ctx, kv, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, kv, tx, &catterytest.Handler{})
	assert.NoError(t, err)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := cattery.WithLogger(context.Background(), log.NewTMLogger(&buf))
	kv := store.MemStore()
	tx := &catterytest.Tx{Msg: &catterytest.Msg{RoutePath: "kitty/mint"}}

	_, err := NewLogging().Deliver(ctx, kv, tx, &catterytest.Handler{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transaction delivered")
	assert.Contains(t, buf.String(), "path=kitty/mint")
	assert.Contains(t, buf.String(), "events=0")

	buf.Reset()
	handler := &catterytest.Handler{DeliverErr: errors.ErrNotFound}
	_, err = NewLogging().Deliver(ctx, kv, tx, handler)
	assert.True(t, errors.ErrNotFound.Is(err))
	code, _ := errors.ABCIInfo(errors.ErrNotFound, false)
	assert.Contains(t, buf.String(), "deliver failed")
	assert.Contains(t, buf.String(), fmt.Sprintf("code=%d", code))

	// Checks are only logged at debug level.
	buf.Reset()
	ctx = cattery.WithLogger(ctx, log.NewFilter(log.NewTMLogger(&buf), log.AllowInfo()))
	_, err = NewLogging().Check(ctx, kv, tx, &catterytest.Handler{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
