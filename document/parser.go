package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/erraggy/svgcase/svgerrors"
)

// entityDecl matches an internal general entity declaration inside a DOCTYPE
// internal subset. Parameter entities and external (SYSTEM/PUBLIC) entities
// do not match and stay undefined.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'<>]+)\s+("[^"]*"|'[^']*')\s*>`)

// DefaultMaxFileSize is the input size limit used when Parser.MaxFileSize is 0.
const DefaultMaxFileSize int64 = 64 << 20

// Parser reads XML documents into a Document tree.
type Parser struct {
	// MaxFileSize is the maximum input size in bytes.
	// Default: DefaultMaxFileSize. A negative value disables the limit.
	MaxFileSize int64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
}

// DocumentStats contains statistical information about a parsed document.
type DocumentStats struct {
	// ElementCount is the number of elements, including the root
	ElementCount int
	// AttributeCount is the number of attributes across all elements
	AttributeCount int
	// MaxDepth is the deepest element nesting level (the root is depth 1)
	MaxDepth int
}

// ParseResult contains a parsed document and metadata about its source.
type ParseResult struct {
	// Document is the parsed tree
	Document *Document
	// SourcePath is the file path the document was read from.
	// For readers and byte slices it is "reader.svg" or "bytes.svg" unless
	// overridden with WithSourceName.
	SourcePath string
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// New creates a new Parser with default settings.
func New() *Parser {
	return &Parser{}
}

// Parse is a convenience function that parses the file at path with a default Parser.
func Parse(path string) (*ParseResult, error) {
	return New().Parse(path)
}

// Parse reads and parses the file at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, &svgerrors.FileError{Op: "open", Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	data, err := p.readAll(f, path)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, path)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader reads all data from r and parses it.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readAll(r, "reader.svg")
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, "reader.svg")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses an in-memory document.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if err := p.checkSize(int64(len(data)), "bytes.svg"); err != nil {
		return nil, err
	}
	return p.parse(data, "bytes.svg")
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize == 0 {
		return DefaultMaxFileSize
	}
	return p.MaxFileSize
}

func (p *Parser) checkSize(size int64, source string) error {
	limit := p.maxFileSize()
	if limit > 0 && size > limit {
		return &svgerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       size,
			Message:      source,
		}
	}
	return nil
}

// readAll reads r while enforcing the size limit.
func (p *Parser) readAll(r io.Reader, source string) ([]byte, error) {
	limit := p.maxFileSize()
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &svgerrors.FileError{Op: "read", Path: source, Cause: err}
	}
	if err := p.checkSize(int64(len(data)), source); err != nil {
		return nil, err
	}
	return data, nil
}

func (p *Parser) parse(data []byte, source string) (*ParseResult, error) {
	log := orNop(p.Logger)

	b := &treeBuilder{source: source, doc: &Document{}, entities: maps.Clone(xml.HTMLEntity)}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	// The decoder reads this map on every lookup, so declarations found in
	// the DOCTYPE apply to the root element that follows.
	dec.Entity = b.entities

	for {
		line, col := dec.InputPos()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, syntaxError(err, source, line, col)
		}
		if err := b.add(tok, line, col); err != nil {
			return nil, err
		}
	}

	if err := b.finish(); err != nil {
		return nil, err
	}

	log.Debug("parsed document",
		"source", source,
		"elements", b.stats.ElementCount,
		"attributes", b.stats.AttributeCount,
		"maxDepth", b.stats.MaxDepth)

	return &ParseResult{
		Document:   b.doc,
		SourcePath: source,
		SourceSize: int64(len(data)),
		Stats:      b.stats,
	}, nil
}

// syntaxError converts a decoder error into a *svgerrors.ParseError.
func syntaxError(err error, source string, line, col int) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &svgerrors.ParseError{Path: source, Line: se.Line, Message: se.Msg}
	}
	return &svgerrors.ParseError{Path: source, Line: line, Column: col, Cause: err}
}

// treeBuilder assembles a Document from raw tokens and enforces the
// well-formedness rules RawToken leaves to the caller.
type treeBuilder struct {
	source   string
	doc      *Document
	stack    []*Element
	stats    DocumentStats
	entities map[string]string
	declared map[string]struct{}
}

func (b *treeBuilder) fail(line, col int, format string, args ...any) error {
	return &svgerrors.ParseError{
		Path:    b.source,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

func (b *treeBuilder) add(tok xml.Token, line, col int) error {
	switch t := tok.(type) {
	case xml.StartElement:
		return b.start(t, line, col)
	case xml.EndElement:
		return b.end(t, line, col)
	case xml.CharData:
		data := string(t)
		if len(b.stack) == 0 && strings.TrimSpace(data) != "" {
			return b.fail(line, col, "text outside the root element")
		}
		b.appendNode(&Text{Data: data})
	case xml.Comment:
		b.appendNode(&Comment{Data: string(t)})
	case xml.ProcInst:
		b.appendNode(&ProcInst{Target: t.Target, Inst: strings.TrimLeft(string(t.Inst), " \t\r\n")})
	case xml.Directive:
		data := string(t)
		b.declareEntities(data)
		b.appendNode(&Directive{Data: data})
	}
	return nil
}

// declareEntities registers the internal entities declared by a DOCTYPE.
// The first declaration of a name wins, as in XML 1.0 section 4.2.
func (b *treeBuilder) declareEntities(directive string) {
	if !strings.HasPrefix(directive, "DOCTYPE") {
		return
	}
	for _, m := range entityDecl.FindAllStringSubmatch(directive, -1) {
		name, value := m[1], m[2][1:len(m[2])-1]
		if _, seen := b.declared[name]; seen {
			continue
		}
		if b.declared == nil {
			b.declared = make(map[string]struct{})
		}
		b.declared[name] = struct{}{}
		b.entities[name] = value
	}
}

func (b *treeBuilder) start(t xml.StartElement, line, col int) error {
	el := &Element{Name: JoinName(t.Name.Space, t.Name.Local), Line: line, Column: col}
	for _, a := range t.Attr {
		key := JoinName(a.Name.Space, a.Name.Local)
		if el.Attrs.Has(key) {
			return b.fail(line, col, "duplicate attribute %q on <%s>", key, el.Name)
		}
		el.Attrs = append(el.Attrs, Attr{Key: key, Value: a.Value})
	}

	if len(b.stack) == 0 {
		if b.doc.Root != nil {
			return b.fail(line, col, "multiple root elements: <%s> after <%s>", el.Name, b.doc.Root.Name)
		}
		b.doc.Root = el
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, el)
	}
	b.stack = append(b.stack, el)

	b.stats.ElementCount++
	b.stats.AttributeCount += len(el.Attrs)
	if len(b.stack) > b.stats.MaxDepth {
		b.stats.MaxDepth = len(b.stack)
	}
	return nil
}

func (b *treeBuilder) end(t xml.EndElement, line, col int) error {
	name := JoinName(t.Name.Space, t.Name.Local)
	if len(b.stack) == 0 {
		return b.fail(line, col, "unexpected end tag </%s>", name)
	}
	top := b.stack[len(b.stack)-1]
	if top.Name != name {
		return b.fail(line, col, "element <%s> closed by </%s>", top.Name, name)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// appendNode adds a non-element node to the current element, or to the
// prolog/epilog when outside the root.
func (b *treeBuilder) appendNode(n Node) {
	switch {
	case len(b.stack) > 0:
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	case b.doc.Root == nil:
		b.doc.Prolog = append(b.doc.Prolog, n)
	default:
		b.doc.Epilog = append(b.doc.Epilog, n)
	}
}

func (b *treeBuilder) finish() error {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		return b.fail(top.Line, top.Column, "element <%s> is never closed", top.Name)
	}
	if b.doc.Root == nil {
		return b.fail(0, 0, "no root element")
	}
	return nil
}

// FormatBytes formats a byte count as a human-readable string using binary units.
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
