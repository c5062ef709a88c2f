// Package config loads svgcase settings from SVGCASE_* environment variables.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/renamer"
)

// DefaultRulesFile is read from the working directory when present and
// SVGCASE_RULES_FILE is not set.
const DefaultRulesFile = "svgcase.yaml"

// Config holds all configurable svgcase defaults.
type Config struct {
	// RulesFile is the rules YAML to load. Empty means DefaultRulesFile if it
	// exists, otherwise the built-in rules.
	RulesFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is console or json.
	LogFormat string

	// Strict makes attribute collisions fail the conversion.
	Strict bool
	// MaxFileSize limits input size in bytes.
	MaxFileSize int64

	// Concurrency is the number of files converted at once by batch.
	Concurrency int
	// WatchDebounce is the quiet period before watch re-runs a conversion.
	WatchDebounce time.Duration

	// MCPMaxInlineSize limits inline content accepted by the MCP server.
	MCPMaxInlineSize int64
}

// Load reads configuration from SVGCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func Load() *Config {
	return &Config{
		RulesFile:     os.Getenv("SVGCASE_RULES_FILE"),
		LogLevel:      envChoice("SVGCASE_LOG_LEVEL", "info", "debug", "info", "warn", "error"),
		LogFormat:     envChoice("SVGCASE_LOG_FORMAT", "console", "console", "json"),
		Strict:        envBool("SVGCASE_STRICT", false),
		MaxFileSize:   int64(envInt("SVGCASE_MAX_FILE_SIZE", int(document.DefaultMaxFileSize))),
		Concurrency:   envInt("SVGCASE_CONCURRENCY", 4),
		WatchDebounce: envDuration("SVGCASE_WATCH_DEBOUNCE", 200*time.Millisecond),

		MCPMaxInlineSize: int64(envInt("SVGCASE_MCP_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

// Rules loads the configured rules. An explicitly configured file must
// exist; the default file is optional.
func (c *Config) Rules() (*renamer.Rules, error) {
	if c.RulesFile != "" {
		return renamer.LoadRules(c.RulesFile)
	}
	rules, err := renamer.LoadRules(DefaultRulesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return renamer.DefaultRules(), nil
	}
	return rules, err
}

// NewRenamer returns a Renamer configured from c.
func (c *Config) NewRenamer(logger document.Logger) (*renamer.Renamer, error) {
	rules, err := c.Rules()
	if err != nil {
		return nil, err
	}
	r := renamer.New()
	r.Rules = rules
	r.StrictMode = c.Strict
	r.MaxFileSize = c.MaxFileSize
	r.Logger = logger
	return r, nil
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

// envChoice returns the lower-cased value of key if it is one of allowed.
func envChoice(key, fallback string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback, "allowed", allowed)
	return fallback
}
