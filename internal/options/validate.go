// Package options provides shared utilities for functional option validation.
package options

import "github.com/erraggy/svgcase/svgerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the message when no source is specified and multiSourceMsg
// the message when more than one is. The returned error is a *svgerrors.ConfigError.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &svgerrors.ConfigError{Option: "input", Message: noSourceMsg}
	case sourceCount > 1:
		return &svgerrors.ConfigError{Option: "input", Value: sourceCount, Message: multiSourceMsg}
	}

	return nil
}
