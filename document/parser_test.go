package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/svgcase/svgerrors"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="10">
  <!-- shapes -->
  <g stroke-width="2" font-family="Arial">
    <rect x="1"/>
    <text>a &amp; b<tspan>c</tspan></text>
  </g>
  <use xlink:href="#r"/>
</svg>
`

// TestParseBytes_Structure tests that the tree mirrors the source
func TestParseBytes_Structure(t *testing.T) {
	result, err := New().ParseBytes([]byte(sampleSVG))
	require.NoError(t, err)
	assert.Equal(t, "bytes.svg", result.SourcePath)
	assert.Equal(t, int64(len(sampleSVG)), result.SourceSize)

	doc := result.Document
	require.NotNil(t, doc.Root)

	// xml decl, newline, doctype, newline
	require.Len(t, doc.Prolog, 4)
	decl, ok := doc.Prolog[0].(*ProcInst)
	require.True(t, ok)
	assert.Equal(t, "xml", decl.Target)
	assert.Equal(t, `version="1.0" encoding="UTF-8"`, decl.Inst)
	dt, ok := doc.Prolog[2].(*Directive)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(dt.Data, "DOCTYPE svg PUBLIC"))

	require.Len(t, doc.Epilog, 1)
	assert.Equal(t, &Text{Data: "\n"}, doc.Epilog[0])

	root := doc.Root
	assert.Equal(t, "svg", root.Name)
	assert.Equal(t, []string{"xmlns", "xmlns:xlink", "width"}, root.Attrs.Keys())
	assert.Equal(t, 3, root.Line)

	kids := root.ChildElements()
	require.Len(t, kids, 2)
	g, use := kids[0], kids[1]
	assert.Equal(t, "g", g.Name)
	assert.Equal(t, []string{"stroke-width", "font-family"}, g.Attrs.Keys())
	assert.Equal(t, []string{"xlink:href"}, use.Attrs.Keys())
	assert.Equal(t, "xlink", use.Attrs[0].Key[:5])

	gKids := g.ChildElements()
	require.Len(t, gKids, 2)
	text := gKids[1]
	assert.Equal(t, "a & b", text.Text())
	require.Len(t, text.ChildElements(), 1)
	assert.Equal(t, "tspan", text.ChildElements()[0].Name)

	var comment *Comment
	for _, c := range root.Children {
		if cm, ok := c.(*Comment); ok {
			comment = cm
		}
	}
	require.NotNil(t, comment)
	assert.Equal(t, " shapes ", comment.Data)

	assert.Equal(t, DocumentStats{ElementCount: 6, AttributeCount: 7, MaxDepth: 4}, result.Stats)
}

// TestParse_File tests parsing from disk and missing files
func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "try.svg")
	require.NoError(t, os.WriteFile(path, []byte(sampleSVG), 0o600))

	result, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, "svg", result.Document.Root.Name)

	_, err = Parse(filepath.Join(dir, "missing.svg"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, svgerrors.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	var fileErr *svgerrors.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "open", fileErr.Op)
}

// TestParseReader tests parsing from an io.Reader
func TestParseReader(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(`<svg><rect/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "reader.svg", result.SourcePath)
	assert.Equal(t, "rect", result.Document.Root.ChildElements()[0].Name)
}

// TestParse_Malformed tests well-formedness failures
func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		contains string
	}{
		{"empty", "", 0, "no root element"},
		{"only prolog", `<?xml version="1.0"?>`, 0, "no root element"},
		{"mismatched tag", "<svg>\n<g>\n</svg>", 3, "element <g> closed by </svg>"},
		{"unclosed", "<svg>\n  <g>", 2, "element <g> is never closed"},
		{"stray end tag", "<svg/></g>", 1, "unexpected end tag </g>"},
		{"two roots", "<svg/>\n<svg/>", 2, "multiple root elements"},
		{"text after root", "<svg/>junk", 1, "text outside the root element"},
		{"text before root", "junk<svg/>", 1, "text outside the root element"},
		{"duplicate attribute", `<svg a="1" a="2"/>`, 1, `duplicate attribute "a"`},
		{"unquoted attribute", `<svg a=1/>`, 1, ""},
		{"bad entity", `<svg>&bogus;</svg>`, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, svgerrors.ErrParse), "want ErrParse, got %v", err)

			var parseErr *svgerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "bytes.svg", parseErr.Path)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, parseErr.Line)
			}
			if tt.contains != "" {
				assert.Contains(t, parseErr.Error(), tt.contains)
			}
		})
	}
}

// TestParse_MaxFileSize tests the size limit for each input kind
func TestParse_MaxFileSize(t *testing.T) {
	data := []byte(`<svg><rect/></svg>`)
	p := &Parser{MaxFileSize: 8}

	_, err := p.ParseBytes(data)
	assert.True(t, errors.Is(err, svgerrors.ErrResourceLimit))

	_, err = p.ParseReader(strings.NewReader(string(data)))
	var limitErr *svgerrors.ResourceLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "file_size", limitErr.ResourceType)
	assert.Equal(t, int64(8), limitErr.Limit)

	unlimited := &Parser{MaxFileSize: -1}
	_, err = unlimited.ParseBytes(data)
	assert.NoError(t, err)
}

// TestParse_Charset tests that declared non-UTF-8 encodings are decoded
func TestParse_Charset(t *testing.T) {
	input := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text>caf\xe9</text></svg>")
	result, err := New().ParseBytes(input)
	require.NoError(t, err)
	assert.Equal(t, "café", result.Document.Root.ChildElements()[0].Text())
}

// TestParse_CDATA tests that CDATA sections are read as text
func TestParse_CDATA(t *testing.T) {
	result, err := New().ParseBytes([]byte(`<svg><style><![CDATA[.a > .b { fill: red }]]></style></svg>`))
	require.NoError(t, err)
	style := result.Document.Root.ChildElements()[0]
	assert.Equal(t, ".a > .b { fill: red }", style.Text())
}

// TestParse_DoctypeEntities tests entities declared in a DOCTYPE internal subset
func TestParse_DoctypeEntities(t *testing.T) {
	const input = `<?xml version="1.0"?>
<!DOCTYPE svg [
	<!ENTITY ns_svg "http://www.w3.org/2000/svg">
	<!ENTITY ns_xlink 'http://www.w3.org/1999/xlink'>
	<!ENTITY label "first">
	<!ENTITY label "second">
]>
<svg xmlns="&ns_svg;" xmlns:xlink="&ns_xlink;"><text>&label; &amp; &copy;</text><rect stroke-width="2"/></svg>`

	result, err := New().ParseBytes([]byte(input))
	require.NoError(t, err)

	root := result.Document.Root
	xmlns, _ := root.Attrs.Get("xmlns")
	assert.Equal(t, "http://www.w3.org/2000/svg", xmlns)
	xlink, _ := root.Attrs.Get("xmlns:xlink")
	assert.Equal(t, "http://www.w3.org/1999/xlink", xlink)
	assert.Equal(t, "first & ©", root.ChildElements()[0].Text())

	dt, ok := result.Document.Prolog[2].(*Directive)
	require.True(t, ok)
	assert.Contains(t, dt.Data, `<!ENTITY ns_svg "http://www.w3.org/2000/svg">`)

	out, err := Marshal(result.Document)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<!DOCTYPE svg [`+"\n\t"+`<!ENTITY ns_svg "http://www.w3.org/2000/svg">`)
	assert.Contains(t, string(out), `<svg xmlns="http://www.w3.org/2000/svg"`)

	t.Run("declarations do not leak between parses", func(t *testing.T) {
		_, err := New().ParseBytes([]byte(`<svg xmlns="&ns_svg;"/>`))
		var pe *svgerrors.ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("external and parameter entities stay undefined", func(t *testing.T) {
		_, err := New().ParseBytes([]byte(`<!DOCTYPE svg [
	<!ENTITY ext SYSTEM "ext.xml">
	<!ENTITY % param "p">
]><svg>&ext;</svg>`))
		assert.True(t, errors.Is(err, svgerrors.ErrParse))
	})
}

// TestParseWithOptions tests the functional options API
func TestParseWithOptions(t *testing.T) {
	t.Run("bytes with source name", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithBytes([]byte(`<svg/>`)),
			WithSourceName("inline.svg"),
			WithLogger(NopLogger{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "inline.svg", result.SourcePath)
	})

	t.Run("reader", func(t *testing.T) {
		result, err := ParseWithOptions(WithReader(strings.NewReader(`<svg/>`)))
		require.NoError(t, err)
		assert.Equal(t, "reader.svg", result.SourcePath)
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.svg")
		require.NoError(t, os.WriteFile(path, []byte(`<svg/>`), 0o600))
		result, err := ParseWithOptions(WithFilePath(path), WithMaxFileSize(1024))
		require.NoError(t, err)
		assert.Equal(t, path, result.SourcePath)
	})

	t.Run("max file size", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte(`<svg></svg>`)), WithMaxFileSize(4))
		assert.True(t, errors.Is(err, svgerrors.ErrResourceLimit))
	})

	t.Run("no input", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, svgerrors.ErrConfig))
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("multiple inputs", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte(`<svg/>`)), WithFilePath("x.svg"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		assert.ErrorContains(t, err, "reader cannot be nil")
	})

	t.Run("nil bytes", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes(nil))
		assert.ErrorContains(t, err, "bytes cannot be nil")
	})
}

// TestFormatBytes tests human-readable byte formatting
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{5 << 30, "5.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size))
	}
}
