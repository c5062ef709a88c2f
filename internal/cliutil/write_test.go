package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d files, %v", "batch", 3, true)
	assert.Equal(t, "batch: 3 files, true", buf.String())

	// Write errors are reported on stderr, not returned.
	assert.NotPanics(t, func() { Writef(errorWriter{}, "lost") })
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	v := struct {
		Files     int `yaml:"files"`
		Succeeded int `yaml:"succeeded"`
	}{Files: 2, Succeeded: 1}

	require.NoError(t, WriteYAML(&buf, v))
	assert.Equal(t, "files: 2\nsucceeded: 1\n", buf.String())

	assert.ErrorContains(t, WriteYAML(errorWriter{}, v), "writing yaml")
}
