package document

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestNopLogger tests that NopLogger accepts every call
func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("d", "k", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
	assert.Equal(t, NopLogger{}, orNop(nil))
}

// TestSlogAdapter tests that attributes reach the slog handler
func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("file", "try.svg")

	l.Debug("renamed attribute", "from", "stroke-width", "to", "strokeWidth")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "file=try.svg")
	assert.Contains(t, out, "from=stroke-width")
	assert.Contains(t, out, "level=ERROR")

	assert.NotNil(t, NewSlogAdapter(nil))
}

// TestZapAdapter tests that attributes reach the zap core
func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapAdapter(zap.New(core)).With("file", "try.svg")

	l.Debug("renamed tag", "from", "rect", "to", "Rect")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "renamed tag", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "try.svg", ctx["file"])
	assert.Equal(t, "Rect", ctx["to"])
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)

	// nil falls back to a no-op logger
	NewZapAdapter(nil).Info("dropped")
}
