// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// IconSVG is a small icon in the shape exported by common design tools:
// kebab-case presentation attributes, a font-family that must survive,
// nested text with tspan, and an xlink reference.
const IconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="24" height="24" viewBox="0 0 24 24">
  <!-- badge -->
  <defs>
    <linearGradient id="grad" gradient-units="userSpaceOnUse">
      <stop offset="0" stop-color="#fff" stop-opacity="0.5"/>
    </linearGradient>
  </defs>
  <g fill-rule="evenodd" stroke-width="2" stroke-linecap="round">
    <rect x="1" y="1" width="22" height="22" rx="4" fill="url(#grad)"/>
    <text font-family="Arial" font-size="10" text-anchor="middle"><tspan x="12" y="15">OK</tspan></text>
  </g>
  <use xlink:href="#grad"/>
</svg>
`

// IconSVGRenamed is IconSVG after renaming with the default rules.
const IconSVGRenamed = `<?xml version="1.0" encoding="UTF-8"?>
<Svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="24" height="24" viewBox="0 0 24 24">
  <!-- badge -->
  <Defs>
    <LinearGradient id="grad" gradientUnits="userSpaceOnUse">
      <Stop offset="0" stopColor="#fff" stopOpacity="0.5"/>
    </LinearGradient>
  </Defs>
  <G fillRule="evenodd" strokeWidth="2" strokeLinecap="round">
    <Rect x="1" y="1" width="22" height="22" rx="4" fill="url(#grad)"/>
    <Text font-family="Arial" fontSize="10" textAnchor="middle"><TSpan x="12" y="15">OK</TSpan></Text>
  </G>
  <Use xlink:href="#grad"/>
</Svg>
`

// MalformedSVG has a mismatched end tag on line 3.
const MalformedSVG = "<svg>\n  <g>\n  </svg>\n"

// WriteTempSVG writes content to name inside a fresh temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempSVG(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), name, content)
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempYAML marshals v to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "svgcase.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
