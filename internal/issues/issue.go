// Package issues provides the issue record reported by the renamer.
package issues

import (
	"fmt"

	"github.com/erraggy/svgcase/internal/severity"
)

// Issue represents a single problem or notice found while renaming a document.
type Issue struct {
	// Path is the element path (e.g., "/svg/g[1]/rect[2]")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the attribute key involved, if any
	Field string
	// Value is the attribute value involved (optional)
	Value string
	// Context provides additional information about the issue (optional)
	Context string
	// Line is the 1-based line number of the element's start tag (0 if unknown)
	Line int
	// Column is the 1-based column number of the element's start tag (0 if unknown)
	Column int
	// File is the source file path (empty for in-memory documents)
	File string
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	var result string
	if i.Line > 0 {
		result = fmt.Sprintf("%s %s (line %d, col %d): %s", i.Severity.Symbol(), i.Path, i.Line, i.Column, i.Message)
	} else {
		result = fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), i.Path, i.Message)
	}

	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the element path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Counts tallies issues by severity.
type Counts struct {
	Info    int
	Warning int
	Error   int
}

// Count tallies the given issues by severity.
func Count(list []Issue) Counts {
	var c Counts
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			c.Info++
		case severity.SeverityWarning:
			c.Warning++
		case severity.SeverityError:
			c.Error++
		}
	}
	return c
}

// Filter returns the issues at or above the given severity.
func Filter(list []Issue, minSeverity severity.Severity) []Issue {
	filtered := make([]Issue, 0, len(list))
	for _, issue := range list {
		if issue.Severity >= minSeverity {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
