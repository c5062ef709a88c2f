// Package fileutil holds file modes and path helpers shared by the svgcase
// commands.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OwnerReadWrite is the file permission mode for scratch output that should
// not be shared (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for converted SVG output,
// which is meant to be picked up by other tools and users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for created output directories.
const DirReadableByAll os.FileMode = 0o755

// SVGExt is the extension of files svgcase converts.
const SVGExt = ".svg"

// IsSVG reports whether path has the .svg extension (case-insensitive).
func IsSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SVGExt)
}

// OutputPathFor derives the output path for input.
//
// With outputDir set, the output keeps the input's base name inside outputDir.
// Otherwise it sits next to the input with suffix inserted before the
// extension: "icons/a.svg" with suffix ".out" becomes "icons/a.out.svg".
// An output path that would overwrite the input is an error.
func OutputPathFor(input, suffix, outputDir string) (string, error) {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)
	if ext == "" {
		ext = SVGExt
	}

	var out string
	if outputDir != "" {
		out = filepath.Join(outputDir, base+ext)
	} else {
		out = filepath.Join(filepath.Dir(input), base+suffix+ext)
	}

	if SamePath(input, out) {
		return "", fmt.Errorf("output path %s would overwrite the input", out)
	}
	return out, nil
}

// SamePath reports whether a and b name the same file after cleaning and
// resolving to absolute paths.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// FindSVGFiles returns the .svg files under root, sorted by path.
// Files whose name (without extension) ends in skipSuffix are left out so
// that a second run does not convert its own output. Hidden directories are
// not descended into.
func FindSVGFiles(root, skipSuffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSVG(path) {
			return nil
		}
		if skipSuffix != "" {
			name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			if strings.HasSuffix(name, skipSuffix) {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
