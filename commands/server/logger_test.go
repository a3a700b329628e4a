package server

import (
	"testing"

	"github.com/iov-one/cattery/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core)).With("module", "test")

	logger.Debug("hidden", "height", 1)
	logger.Info("committed", "height", int64(7))
	logger.With("tx", 3).Error("failed", "err", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "committed", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]interface{}{
		"module": "test",
		"height": int64(7),
	}, entries[0].ContextMap())

	assert.Equal(t, "failed", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{
		"module": "test",
		"tx":     int64(3),
		"err":    "boom",
	}, entries[1].ContextMap())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("chatty", false)
	require.Error(t, err)
	assert.True(t, errors.ErrInput.Is(err))
}
