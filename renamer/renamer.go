package renamer

import (
	"context"
	"fmt"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/fileutil"
	"github.com/erraggy/svgcase/internal/issues"
	"github.com/erraggy/svgcase/internal/naming"
	"github.com/erraggy/svgcase/internal/severity"
	"github.com/erraggy/svgcase/svgerrors"
	"github.com/erraggy/svgcase/walker"
)

// Severity indicates the severity level of a rename issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages, such as a preserved attribute
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates a lossy rename, such as two keys collapsing into one
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates a collision rejected by strict mode
	SeverityError = severity.SeverityError
)

// RenameIssue represents a single rename issue
type RenameIssue = issues.Issue

// RenameStats counts what a transform did.
type RenameStats struct {
	// ElementsVisited is the number of elements in the document
	ElementsVisited int
	// TagsRenamed is the number of elements whose tag changed
	TagsRenamed int
	// AttributesRenamed is the number of attribute keys that changed
	AttributesRenamed int
	// AttributesPreserved is the number of attributes kept verbatim by the rules
	AttributesPreserved int
	// Collisions is the number of renamed keys that landed on an existing key
	Collisions int
}

// RenameResult contains the results of renaming a document
type RenameResult struct {
	// Document is the renamed document. The input document is modified in place
	// and returned here.
	Document *document.Document
	// SourcePath is the path the document was read from, if any
	SourcePath string
	// Stats counts the renames performed
	Stats RenameStats
	// Issues contains collisions (errors in strict mode, warnings otherwise)
	// and, with IncludeInfo, info messages
	Issues []RenameIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// Success is false when strict mode rejected a collision
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *RenameResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// HasErrors returns true if there are any errors
func (r *RenameResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// Renamer rewrites tag names and attribute keys of SVG documents.
type Renamer struct {
	// Rules holds the preserve list and tag overrides. Nil means DefaultRules().
	Rules *Rules
	// StrictMode makes an attribute collision an error
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// MaxDepth limits element nesting; 0 uses walker.DefaultMaxDepth
	MaxDepth int
	// MaxFileSize limits input size; 0 uses document.DefaultMaxFileSize
	MaxFileSize int64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger document.Logger
}

// New creates a new Renamer instance with default settings
func New() *Renamer {
	return &Renamer{
		Rules:       DefaultRules(),
		StrictMode:  false,
		IncludeInfo: false,
	}
}

// RenameKey converts a kebab-case attribute key to camelCase.
// "stroke-width" becomes "strokeWidth"; a key without '-' is returned as-is.
func RenameKey(key string) string {
	return naming.UnKebab(key)
}

// RenameTag renames a tag with the default rules: exactly "tspan" becomes
// "TSpan", any other tag gets an upper-case first character. A prefix is part
// of the tag, so "svg:rect" becomes "Svg:rect".
func RenameTag(tag string) string {
	return renameTag(DefaultRules(), tag)
}

// RenameKey converts a kebab-case attribute key to camelCase.
// It does not consult the preserve list; see Transform.
func (r *Renamer) RenameKey(key string) string {
	return naming.UnKebab(key)
}

// RenameTag renames a tag using the renamer's rules.
func (r *Renamer) RenameTag(tag string) string {
	return renameTag(r.rules(), tag)
}

func renameTag(rules *Rules, tag string) string {
	if v, ok := rules.TagOverride(tag); ok {
		return v
	}
	if !rules.RenameLocalNames {
		return naming.UpperFirst(tag)
	}
	prefix, local := document.SplitName(tag)
	if v, ok := rules.TagOverride(local); ok {
		return document.JoinName(prefix, v)
	}
	return document.JoinName(prefix, naming.UpperFirst(local))
}

func (r *Renamer) rules() *Rules {
	if r.Rules == nil {
		return DefaultRules()
	}
	return r.Rules
}

// Rename is a convenience function that renames the SVG file at path with
// default settings. The input file is not modified.
//
// Example:
//
//	result, err := renamer.Rename("try.svg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = document.WriteFile(result.Document, "out.svg", 0o644)
func Rename(path string) (*RenameResult, error) {
	return New().Rename(path)
}

// RenameParsed is a convenience function that renames an already-parsed document.
func RenameParsed(parseResult *document.ParseResult) (*RenameResult, error) {
	return New().RenameParsed(parseResult)
}

// RenameFile is a convenience function that renames input and writes the
// result to output with default settings.
func RenameFile(input, output string) (*RenameResult, error) {
	return New().RenameFile(input, output)
}

// Rename parses the SVG file at path and renames it.
func (r *Renamer) Rename(path string) (*RenameResult, error) {
	p := &document.Parser{Logger: r.Logger, MaxFileSize: r.MaxFileSize}
	parseResult, err := p.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("renamer: failed to parse document: %w", err)
	}
	return r.RenameParsed(parseResult)
}

// RenameParsed renames an already-parsed document in place.
func (r *Renamer) RenameParsed(parseResult *document.ParseResult) (*RenameResult, error) {
	if parseResult == nil {
		return nil, fmt.Errorf("renamer: nil ParseResult")
	}
	return r.transform(context.Background(), parseResult.Document, parseResult.SourcePath)
}

// RenameFile renames the SVG file at input and writes the result to output.
// Output is written even in strict mode when a collision is reported, so the
// returned error should be checked before using the file.
func (r *Renamer) RenameFile(input, output string) (*RenameResult, error) {
	result, err := r.Rename(input)
	if result == nil {
		return nil, err
	}
	if werr := document.WriteFile(result.Document, output, fileutil.ReadableByAll); werr != nil {
		return result, fmt.Errorf("renamer: failed to write output: %w", werr)
	}
	return result, err
}

// Transform renames every element of doc in place.
//
// Elements are visited in document order. Each element's tag is renamed
// first, then each attribute from a snapshot of its attribute list: preserved
// keys are skipped, every other key is set under its renamed form and the old
// key removed. A renamed key that does not exist yet takes over the old key's
// position. When it does exist, the last value in document order wins and a
// warning is recorded.
func (r *Renamer) Transform(doc *document.Document) (*RenameResult, error) {
	return r.transform(context.Background(), doc, "")
}

// TransformContext is Transform with cancellation.
func (r *Renamer) TransformContext(ctx context.Context, doc *document.Document) (*RenameResult, error) {
	return r.transform(ctx, doc, "")
}

func (r *Renamer) transform(ctx context.Context, doc *document.Document, source string) (*RenameResult, error) {
	log := r.Logger
	if log == nil {
		log = document.NopLogger{}
	}
	rules := r.rules()

	result := &RenameResult{
		Document:   doc,
		SourcePath: source,
		Issues:     make([]RenameIssue, 0),
	}
	var firstCollision string
	collisionSeverity := SeverityWarning
	if r.StrictMode {
		collisionSeverity = SeverityError
	}

	opts := []walker.Option{
		walker.WithUserContext(ctx),
		walker.WithMaxDepth(r.MaxDepth),
		walker.WithElementHandler(func(wc *walker.WalkContext, el *document.Element) walker.Action {
			result.Stats.ElementsVisited++

			oldTag := el.Name
			newTag := renameTag(rules, oldTag)
			if newTag != oldTag {
				el.Name = newTag
				result.Stats.TagsRenamed++
				log.Debug("renamed tag", "path", wc.Path, "from", oldTag, "to", newTag)
			}

			for _, attr := range el.Attrs.Snapshot() {
				if rules.IsPreserved(attr.Key) {
					result.Stats.AttributesPreserved++
					if r.IncludeInfo {
						result.Issues = append(result.Issues, RenameIssue{
							Path:     wc.Path,
							Message:  fmt.Sprintf("attribute %q kept verbatim", attr.Key),
							Severity: SeverityInfo,
							Field:    attr.Key,
							Line:     el.Line,
							Column:   el.Column,
							File:     source,
						})
					}
					continue
				}

				newKey := naming.UnKebab(attr.Key)
				if newKey == attr.Key {
					el.Attrs.Set(attr.Key, attr.Value)
					continue
				}

				result.Stats.AttributesRenamed++
				if el.Attrs.Rename(attr.Key, newKey) {
					log.Debug("renamed attribute", "path", wc.Path, "from", attr.Key, "to", newKey)
					continue
				}

				previous, _ := el.Attrs.Get(newKey)
				el.Attrs.Set(newKey, attr.Value)
				el.Attrs.Remove(attr.Key)

				result.Stats.Collisions++
				if firstCollision == "" {
					firstCollision = fmt.Sprintf("%s: %s -> %s", wc.Path, attr.Key, newKey)
				}
				result.Issues = append(result.Issues, RenameIssue{
					Path:     wc.Path,
					Message:  fmt.Sprintf("attribute %q renames onto existing %q; the last value in document order is kept", attr.Key, newKey),
					Severity: collisionSeverity,
					Field:    newKey,
					Value:    attr.Value,
					Context:  fmt.Sprintf("previous value %q", previous),
					Line:     el.Line,
					Column:   el.Column,
					File:     source,
				})
				log.Warn("attribute collision", "path", wc.Path, "from", attr.Key, "to", newKey)
			}
			return walker.Continue
		}),
	}

	if err := walker.Walk(doc, opts...); err != nil {
		return nil, fmt.Errorf("renamer: %w", err)
	}

	r.updateCounts(result)
	result.Success = !result.HasErrors()

	log.Debug("renamed document",
		"source", source,
		"elements", result.Stats.ElementsVisited,
		"tags", result.Stats.TagsRenamed,
		"attributes", result.Stats.AttributesRenamed,
		"collisions", result.Stats.Collisions)

	if !result.Success {
		return result, &svgerrors.CollisionError{Count: result.Stats.Collisions, First: firstCollision}
	}
	return result, nil
}

// updateCounts updates the issue counts in the result
func (r *Renamer) updateCounts(result *RenameResult) {
	counts := issues.Count(result.Issues)
	result.InfoCount = counts.Info
	result.WarningCount = counts.Warning
	result.ErrorCount = counts.Error
}
