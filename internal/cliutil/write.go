// Package cliutil provides output helpers for the svgcase command.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteYAML marshals v as YAML and writes it to w.
func WriteYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling to yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return nil
}
