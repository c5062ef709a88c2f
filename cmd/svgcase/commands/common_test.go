package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/svgcase/internal/config"
	"github.com/erraggy/svgcase/renamer"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		level zapcore.Level
	}{
		{name: "console info", cfg: config.Config{LogLevel: "info", LogFormat: "console"}, level: zapcore.InfoLevel},
		{name: "json warn", cfg: config.Config{LogLevel: "warn", LogFormat: "json"}, level: zapcore.WarnLevel},
		{name: "console debug", cfg: config.Config{LogLevel: "debug", LogFormat: "console"}, level: zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newZapLogger(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			assert.False(t, logger.Core().Enabled(tt.level-1))
		})
	}

	_, err := newZapLogger(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestOutputRenameSummary(t *testing.T) {
	result, err := renamer.RenameWithOptions(
		renamer.WithBytes([]byte(`<text font-family="Arial" font-size="2"/>`)),
		renamer.WithIncludeInfo(true),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	outputRenameSummary(&buf, "in.svg", "out.svg", 2048, result)
	out := buf.String()
	assert.Contains(t, out, "Input: in.svg\n")
	assert.Contains(t, out, "Source Size: 2.0 KiB\n")
	assert.Contains(t, out, "Attributes Renamed: 1\n")
	assert.Contains(t, out, "Attributes Preserved: 1\n")
	assert.Contains(t, out, "kept verbatim")
}
