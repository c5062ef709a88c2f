package document

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/erraggy/svgcase/svgerrors"
)

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#9;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#13;",
	)

	// Output is always UTF-8, whatever the source declared.
	declEncoding = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)
)

// Marshal serializes doc into a byte slice.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes doc to w.
//
// No pretty-printing is applied: whitespace in the tree is written as it was
// read. Elements without children are written self-closing.
func Write(w io.Writer, doc *Document) error {
	if doc == nil || doc.Root == nil {
		return fmt.Errorf("document: cannot write a document without a root element")
	}

	bw := bufio.NewWriter(w)
	e := &encoder{w: bw}
	for _, n := range doc.Prolog {
		e.node(n)
	}
	e.element(doc.Root)
	for _, n := range doc.Epilog {
		e.node(n)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("document: writing output: %w", err)
	}
	return nil
}

// WriteFile serializes doc to the file at path, creating or truncating it.
func WriteFile(doc *Document, path string, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return &svgerrors.FileError{Op: "create", Path: path, Cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &svgerrors.FileError{Op: "close", Path: path, Cause: cerr}
		}
	}()

	if err := Write(f, doc); err != nil {
		return &svgerrors.FileError{Op: "write", Path: path, Cause: err}
	}
	return nil
}

// encoder writes nodes to a bufio.Writer. bufio keeps the first write error
// and reports it from Flush, so individual writes are not checked.
type encoder struct {
	w *bufio.Writer
}

func (e *encoder) str(s string) {
	_, _ = e.w.WriteString(s)
}

func (e *encoder) node(n Node) {
	switch t := n.(type) {
	case *Element:
		e.element(t)
	case *Text:
		e.str(textEscaper.Replace(t.Data))
	case *Comment:
		e.str("<!--")
		e.str(t.Data)
		e.str("-->")
	case *ProcInst:
		e.procInst(t)
	case *Directive:
		e.str("<!")
		e.str(t.Data)
		e.str(">")
	}
}

func (e *encoder) element(el *Element) {
	e.str("<")
	e.str(el.Name)
	for _, a := range el.Attrs {
		e.str(" ")
		e.str(a.Key)
		e.str(`="`)
		e.str(attrEscaper.Replace(a.Value))
		e.str(`"`)
	}
	if len(el.Children) == 0 {
		e.str("/>")
		return
	}
	e.str(">")
	for _, c := range el.Children {
		e.node(c)
	}
	e.str("</")
	e.str(el.Name)
	e.str(">")
}

func (e *encoder) procInst(pi *ProcInst) {
	inst := pi.Inst
	if pi.Target == "xml" {
		inst = declEncoding.ReplaceAllString(inst, `encoding="UTF-8"`)
	}
	e.str("<?")
	e.str(pi.Target)
	if inst != "" {
		e.str(" ")
		e.str(inst)
	}
	e.str("?>")
}
