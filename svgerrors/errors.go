// Package svgerrors provides structured error types for svgcase.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a malformed document apart from a
// missing file or a bad rules file.
//
// # Error Categories
//
//   - ParseError: XML syntax errors and well-formedness violations
//   - FileError: failures opening, reading, or writing files
//   - ResourceLimitError: inputs exceeding a configured limit (file size, depth)
//   - ConfigError: invalid options, rules, or environment configuration
//   - CollisionError: two attributes renamed to the same key (strict mode only)
//
// # Usage with errors.As
//
//	result, err := renamer.Rename("try.svg")
//	if err != nil {
//	    var parseErr *svgerrors.ParseError
//	    if errors.As(err, &parseErr) {
//	        fmt.Printf("line %d: %s\n", parseErr.Line, parseErr.Message)
//	    }
//	}
package svgerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the input is not well-formed XML.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a file could not be opened, read, or written.
	ErrIO = errors.New("i/o error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrCollision indicates two attribute keys renamed to the same key.
	ErrCollision = errors.New("attribute collision")
)

// ParseError represents a failure to parse an XML document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FileError represents a failed filesystem operation.
type FileError struct {
	// Op is the operation that failed: "open", "read", "write", "stat", ...
	Op string
	// Path is the file that was being accessed
	Path string
	// Cause is the underlying error, usually an *fs.PathError
	Cause error
}

// Error returns a human-readable error message.
func (e *FileError) Error() string {
	msg := "i/o error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FileError) Is(target error) bool {
	return target == ErrIO
}

// ResourceLimitError represents an input that exceeded a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded: "file_size" or "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and malformed rules files.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// CollisionError reports attribute keys that renamed onto an existing key.
// It is only returned in strict mode; otherwise collisions are recorded as issues.
type CollisionError struct {
	// Count is the number of collisions in the document
	Count int
	// First describes the first collision, e.g. "/svg/rect[1]: stroke-width -> strokeWidth"
	First string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := fmt.Sprintf("attribute collision: %d key(s) renamed onto an existing key", e.Count)
	if e.First != "" {
		msg += " (first at " + e.First + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}
