// Package severity provides severity level constants for issues reported
// while renaming a document.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found during a rename.
type Severity int

const (
	// SeverityInfo indicates informational messages, such as an attribute
	// that was kept verbatim because it is on the preserve list.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a rename that lost information, such as two
	// attributes collapsing onto the same key.
	SeverityWarning

	// SeverityError indicates a problem that makes the output unusable.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in CLI output.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}
