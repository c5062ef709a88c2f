package renamer

import (
	"fmt"
	"io"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/options"
)

// Option is a function that configures a rename operation
type Option func(*renameConfig) error

// renameConfig holds configuration for a rename operation
type renameConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	parsed   *document.ParseResult

	// Configuration options
	rules       *Rules
	strictMode  bool
	includeInfo bool
	maxFileSize int64
	logger      document.Logger
}

// RenameWithOptions renames an SVG document using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := renamer.RenameWithOptions(
//	    renamer.WithFilePath("try.svg"),
//	    renamer.WithStrictMode(true),
//	)
func RenameWithOptions(opts ...Option) (*RenameResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("renamer: invalid options: %w", err)
	}

	r := &Renamer{
		Rules:       cfg.rules,
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		MaxFileSize: cfg.maxFileSize,
		Logger:      cfg.logger,
	}

	if cfg.filePath != nil {
		return r.Rename(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return r.RenameParsed(cfg.parsed)
	}

	var parseOpt document.Option
	if cfg.reader != nil {
		parseOpt = document.WithReader(cfg.reader)
	} else {
		parseOpt = document.WithBytes(cfg.bytes)
	}
	parseResult, err := document.ParseWithOptions(
		parseOpt,
		document.WithLogger(cfg.logger),
		document.WithMaxFileSize(cfg.maxFileSize),
	)
	if err != nil {
		return nil, fmt.Errorf("renamer: failed to parse document: %w", err)
	}
	return r.RenameParsed(parseResult)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*renameConfig, error) {
	cfg := &renameConfig{
		rules: DefaultRules(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, WithBytes, or WithParsed)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *renameConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *renameConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *renameConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already-parsed document as the input source
func WithParsed(result *document.ParseResult) Option {
	return func(cfg *renameConfig) error {
		if result == nil {
			return fmt.Errorf("parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithRules sets the preserve list and tag overrides.
// Default: DefaultRules()
func WithRules(rules *Rules) Option {
	return func(cfg *renameConfig) error {
		if rules == nil {
			return fmt.Errorf("rules cannot be nil")
		}
		if err := rules.Validate(); err != nil {
			return err
		}
		cfg.rules = rules
		return nil
	}
}

// WithStrictMode makes an attribute collision an error
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *renameConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: false
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *renameConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
// Default: document.DefaultMaxFileSize
func WithMaxFileSize(n int64) Option {
	return func(cfg *renameConfig) error {
		cfg.maxFileSize = n
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(l document.Logger) Option {
	return func(cfg *renameConfig) error {
		cfg.logger = l
		return nil
	}
}
