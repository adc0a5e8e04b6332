package roplog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

func newObserved(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestLog_LevelsByKind(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)

	Log(logger, "step", rop.Success(1))
	Log(logger, "step", rop.ErrorWithCode[int](4, "bad"))
	Log(logger, "step", rop.Failure[int](errors.New("disk")))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	errFields := entries[1].ContextMap()
	assert.Equal(t, int64(4), errFields["result_code"])
	assert.Equal(t, "bad", errFields["result_message"])
	assert.Equal(t, "error", errFields["result_kind"])

	assert.Equal(t, "disk", entries[2].ContextMap()["error"])
}

func TestLog_ReturnsInputUnchanged(t *testing.T) {
	t.Parallel()
	logger, _ := newObserved(zapcore.DebugLevel)

	in := rop.Error[string]("x")

	assert.Equal(t, in, Log(logger, "m", in))
}

func TestLog_BelowLevelIsSkipped(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.ErrorLevel)

	Log(logger, "m", rop.Success(1))

	assert.Zero(t, logs.Len())
}

func TestFields_NoCode(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)

	logger.Info("m", Fields(rop.Error[int]("plain"))...)

	fields := logs.All()[0].ContextMap()
	_, hasCode := fields["result_code"]
	assert.False(t, hasCode)
}

func TestSideEffects_WithSolo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger, logs := newObserved(zapcore.DebugLevel)

	solo.Use(ctx, rop.Success("v"), Success[string](logger, "done"))
	solo.UseError(ctx, rop.Failure[string](errors.New("boom")), Error(logger, "failed"), nil, rop.CodeOf(500))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "done", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["value"])
	assert.Equal(t, "failed", entries[1].Message)
	assert.Equal(t, int64(500), entries[1].ContextMap()["result_code"])
	assert.Equal(t, "boom", entries[1].ContextMap()["result_message"])
}

func TestStage(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)

	out := Stage[int](logger, "stage")(context.Background(), rop.Success(3))

	assert.Equal(t, 3, out.Result())
	assert.Equal(t, 1, logs.FilterMessage("stage").Len())
}
