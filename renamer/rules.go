package renamer

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/svgcase/svgerrors"
)

// Rules holds the exceptions to the general renaming rules.
//
// A rules file is YAML:
//
//	preserve_attributes:
//	  - font-family
//	  - data-name
//	tag_overrides:
//	  tspan: TSpan
//	  textpath: TextPath
//	rename_local_names: false
//	replace: false
//
// Without replace (or with replace: false) the file extends DefaultRules.
type Rules struct {
	// PreserveAttributes lists attribute keys that are never renamed.
	PreserveAttributes []string `yaml:"preserve_attributes,omitempty"`
	// TagOverrides maps a tag to its replacement, bypassing the general
	// upper-first rule. Keys match the whole tag, prefix included.
	TagOverrides map[string]string `yaml:"tag_overrides,omitempty"`
	// RenameLocalNames renames only the local part of a prefixed tag, keeping
	// the prefix ("svg:rect" becomes "svg:Rect" and "svg:tspan" matches the
	// tspan override). Off by default: the whole tag is one name.
	RenameLocalNames bool `yaml:"rename_local_names,omitempty"`
}

type rulesFile struct {
	Rules   `yaml:",inline"`
	Replace bool `yaml:"replace,omitempty"`
}

// DefaultRules returns the built-in rules: font-family is preserved and
// tspan becomes TSpan.
func DefaultRules() *Rules {
	return &Rules{
		PreserveAttributes: []string{"font-family"},
		TagOverrides:       map[string]string{"tspan": "TSpan"},
	}
}

// IsPreserved reports whether key must be kept verbatim.
func (r *Rules) IsPreserved(key string) bool {
	return slices.Contains(r.PreserveAttributes, key)
}

// TagOverride returns the override for tag, if one exists.
func (r *Rules) TagOverride(tag string) (string, bool) {
	v, ok := r.TagOverrides[tag]
	return v, ok
}

// Clone returns a deep copy of the rules.
func (r *Rules) Clone() *Rules {
	c := &Rules{
		PreserveAttributes: slices.Clone(r.PreserveAttributes),
		TagOverrides:       make(map[string]string, len(r.TagOverrides)),
		RenameLocalNames:   r.RenameLocalNames,
	}
	for k, v := range r.TagOverrides {
		c.TagOverrides[k] = v
	}
	return c
}

// Merge returns a copy of r extended by other. Overrides in other win.
func (r *Rules) Merge(other *Rules) *Rules {
	merged := r.Clone()
	if other == nil {
		return merged
	}
	for _, k := range other.PreserveAttributes {
		if !merged.IsPreserved(k) {
			merged.PreserveAttributes = append(merged.PreserveAttributes, k)
		}
	}
	for k, v := range other.TagOverrides {
		merged.TagOverrides[k] = v
	}
	if other.RenameLocalNames {
		merged.RenameLocalNames = true
	}
	return merged
}

// Validate checks that no key or replacement is empty.
func (r *Rules) Validate() error {
	for _, k := range r.PreserveAttributes {
		if k == "" {
			return &svgerrors.ConfigError{Option: "preserve_attributes", Message: "empty attribute key"}
		}
	}
	for _, k := range r.sortedOverrideKeys() {
		if k == "" {
			return &svgerrors.ConfigError{Option: "tag_overrides", Message: "empty tag"}
		}
		if r.TagOverrides[k] == "" {
			return &svgerrors.ConfigError{Option: "tag_overrides", Value: k, Message: "empty replacement"}
		}
	}
	return nil
}

func (r *Rules) sortedOverrideKeys() []string {
	keys := make([]string, 0, len(r.TagOverrides))
	for k := range r.TagOverrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseRules parses a YAML rules document.
func ParseRules(data []byte) (*Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &svgerrors.ConfigError{Option: "rules", Message: "invalid YAML", Cause: err}
	}
	if err := file.Rules.Validate(); err != nil {
		return nil, err
	}
	if file.Replace {
		rules := file.Rules.Clone()
		return rules, nil
	}
	return DefaultRules().Merge(&file.Rules), nil
}

// LoadRules reads and parses the rules file at path.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &svgerrors.FileError{Op: "read", Path: path, Cause: err}
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("renamer: rules file %s: %w", path, err)
	}
	return rules, nil
}
