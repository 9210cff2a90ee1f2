package logger_test

import (
	"testing"

	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet_CapturesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	logger.Debug("dropped")
	logger.Info("request accepted", zap.Uint64("request_id", 9))
	logger.Error("publish failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "request accepted", entries[0].Message)
	assert.Equal(t, uint64(9), entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { logger.Set(nil) })

	require.NoError(t, logger.Init(logger.Options{Environment: "production", Level: "warn", Service: "api"}))
	assert.False(t, logger.Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Get().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, logger.Init(logger.Options{Level: "loud"}))
}
