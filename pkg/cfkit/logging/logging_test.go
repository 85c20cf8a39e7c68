package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("component", "arc").Warn(context.Background(), "leaked reference", logging.Addr("addr", 0x1f0))

	out := buf.String()
	assert.Contains(t, out, "leaked reference")
	assert.Contains(t, out, "component=arc")
	assert.Contains(t, out, "addr=0x1f0")
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewZap(zap.New(core))

	l.With("component", "arc").Error(context.Background(), "double release",
		"type", "CFString", logging.Addr("addr", 0x2a0))

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "double release", e.Message)
	assert.Equal(t, zapcore.ErrorLevel, e.Level)

	fields := e.ContextMap()
	assert.Equal(t, "arc", fields["component"])
	assert.Equal(t, "CFString", fields["type"])
	assert.Equal(t, "0x2a0", fields["addr"])
}

func TestNilLoggers(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.NewZap(nil).Info(context.Background(), "dropped")
		logging.Nop().With("k", "v").Error(context.Background(), "dropped")
	})
}
