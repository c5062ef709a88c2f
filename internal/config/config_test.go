package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/svgerrors"
)

// clearSVGCASEEnv clears all SVGCASE_* env vars to isolate tests from the ambient environment.
func clearSVGCASEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SVGCASE_RULES_FILE", "SVGCASE_LOG_LEVEL", "SVGCASE_LOG_FORMAT",
		"SVGCASE_STRICT", "SVGCASE_MAX_FILE_SIZE", "SVGCASE_CONCURRENCY",
		"SVGCASE_WATCH_DEBOUNCE", "SVGCASE_MCP_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearSVGCASEEnv(t)

	c := Load()

	assert.Empty(t, c.RulesFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.False(t, c.Strict)
	assert.Equal(t, document.DefaultMaxFileSize, c.MaxFileSize)
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, 200*time.Millisecond, c.WatchDebounce)
	assert.Equal(t, int64(10*1024*1024), c.MCPMaxInlineSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearSVGCASEEnv(t)
	t.Setenv("SVGCASE_RULES_FILE", "rules.yaml")
	t.Setenv("SVGCASE_LOG_LEVEL", "DEBUG")
	t.Setenv("SVGCASE_LOG_FORMAT", "json")
	t.Setenv("SVGCASE_STRICT", "true")
	t.Setenv("SVGCASE_MAX_FILE_SIZE", "2048")
	t.Setenv("SVGCASE_CONCURRENCY", "16")
	t.Setenv("SVGCASE_WATCH_DEBOUNCE", "1s")

	c := Load()

	assert.Equal(t, "rules.yaml", c.RulesFile)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.True(t, c.Strict)
	assert.Equal(t, int64(2048), c.MaxFileSize)
	assert.Equal(t, 16, c.Concurrency)
	assert.Equal(t, time.Second, c.WatchDebounce)
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	clearSVGCASEEnv(t)
	t.Setenv("SVGCASE_LOG_LEVEL", "verbose")
	t.Setenv("SVGCASE_LOG_FORMAT", "xml")
	t.Setenv("SVGCASE_STRICT", "maybe")
	t.Setenv("SVGCASE_CONCURRENCY", "-2")
	t.Setenv("SVGCASE_WATCH_DEBOUNCE", "soon")

	c := Load()

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.False(t, c.Strict)
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, 200*time.Millisecond, c.WatchDebounce)
}

func TestConfig_Rules(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("no file uses defaults", func(t *testing.T) {
		rules, err := (&Config{}).Rules()
		require.NoError(t, err)
		assert.True(t, rules.IsPreserved("font-family"))
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := (&Config{RulesFile: filepath.Join(dir, "nope.yaml")}).Rules()
		assert.True(t, errors.Is(err, svgerrors.ErrIO))
	})

	t.Run("default file picked up", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRulesFile), []byte("preserve_attributes: [data-name]\n"), 0o600))
		t.Cleanup(func() { _ = os.Remove(filepath.Join(dir, DefaultRulesFile)) })

		rules, err := (&Config{}).Rules()
		require.NoError(t, err)
		assert.True(t, rules.IsPreserved("data-name"))
	})

	t.Run("invalid default file is an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRulesFile), []byte("tag_overrides: {a: ''}\n"), 0o600))
		t.Cleanup(func() { _ = os.Remove(filepath.Join(dir, DefaultRulesFile)) })

		_, err := (&Config{}).Rules()
		assert.True(t, errors.Is(err, svgerrors.ErrConfig))
	})
}

func TestConfig_NewRenamer(t *testing.T) {
	t.Chdir(t.TempDir())

	c := &Config{Strict: true, MaxFileSize: 99}
	r, err := c.NewRenamer(document.NopLogger{})
	require.NoError(t, err)
	assert.True(t, r.StrictMode)
	assert.Equal(t, int64(99), r.MaxFileSize)
	assert.Equal(t, document.NopLogger{}, r.Logger)
	assert.Equal(t, "TSpan", r.RenameTag("tspan"))
}
