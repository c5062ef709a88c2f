// Package naming provides the case conversion rules used to rename SVG tags
// and attributes.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst upper-cases the first character of s and leaves the rest unchanged.
// The mapping is the full Unicode upper-case mapping, so a first character may
// expand to more than one rune ("ßx" -> "SSx").
// Example: "rect" -> "Rect"
// Example: "Rect" -> "Rect"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}

	if c := s[0]; c < utf8.RuneSelf {
		if 'a' <= c && c <= 'z' {
			return string(c-('a'-'A')) + s[1:]
		}
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	// cases.Caser keeps state; a fresh one per call is safe for concurrent use.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// UnKebab converts a hyphen-delimited name to camelCase.
// The first segment is kept as is; every following segment has its first
// character upper-cased. Empty segments contribute nothing.
// Example: "stroke-width" -> "strokeWidth"
// Example: "stroke--width" -> "strokeWidth"
// Example: "-moz-opacity" -> "MozOpacity"
// Example: "viewBox" -> "viewBox"
func UnKebab(name string) string {
	head, rest, found := strings.Cut(name, "-")
	if !found {
		return name
	}

	var result strings.Builder
	result.Grow(len(name))
	result.WriteString(head)
	for _, segment := range strings.Split(rest, "-") {
		result.WriteString(UpperFirst(segment))
	}

	return result.String()
}

// IsKebab reports whether name contains a hyphen and would therefore be
// changed by UnKebab.
func IsKebab(name string) bool {
	return strings.Contains(name, "-")
}
