package document

import (
	"fmt"
	"strings"
)

// NodeType identifies the kind of a Node.
type NodeType int

const (
	// ElementNode is an *Element.
	ElementNode NodeType = iota
	// TextNode is a *Text (character data, including CDATA sections).
	TextNode
	// CommentNode is a *Comment.
	CommentNode
	// ProcInstNode is a *ProcInst, including the XML declaration.
	ProcInstNode
	// DirectiveNode is a *Directive such as <!DOCTYPE ...>.
	DirectiveNode
)

// String returns a string representation of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case ProcInstNode:
		return "procinst"
	case DirectiveNode:
		return "directive"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is a member of a Document tree.
type Node interface {
	Type() NodeType
}

// Document is a parsed XML document.
// It holds exactly one root element. Comments, processing instructions,
// directives and whitespace around the root are kept in Prolog and Epilog
// so they survive a round trip.
type Document struct {
	// Prolog holds the nodes before the root element (XML declaration, DOCTYPE, ...)
	Prolog []Node
	// Root is the document element
	Root *Element
	// Epilog holds the nodes after the root element
	Epilog []Node
}

// Element is a single XML element.
type Element struct {
	// Name is the tag name as written in the source, including any "prefix:".
	Name string
	// Attrs holds the attributes in source order. Keys are unique.
	Attrs Attributes
	// Children holds child nodes in source order.
	Children []Node
	// Line and Column give the 1-based position of the start tag (0 if unknown).
	Line   int
	Column int
}

// NewElement creates an element with the given name and attributes.
func NewElement(name string, attrs ...Attr) *Element {
	el := &Element{Name: name}
	for _, a := range attrs {
		el.Attrs.Set(a.Key, a.Value)
	}
	return el
}

// Type implements Node.
func (*Element) Type() NodeType { return ElementNode }

// AppendChild appends n to the element's children and returns the element.
func (e *Element) AppendChild(n Node) *Element {
	e.Children = append(e.Children, n)
	return e
}

// ChildElements returns the element children, skipping text and other nodes.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated character data of the element's direct children.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if t, ok := c.(*Text); ok {
			b.WriteString(t.Data)
		}
	}
	return b.String()
}

// Prefix returns the namespace prefix of the tag name, or "".
func (e *Element) Prefix() string {
	prefix, _ := SplitName(e.Name)
	return prefix
}

// LocalName returns the tag name without its namespace prefix.
func (e *Element) LocalName() string {
	_, local := SplitName(e.Name)
	return local
}

// Text is character data. CDATA sections are read as Text and written escaped.
type Text struct {
	Data string
}

// Type implements Node.
func (*Text) Type() NodeType { return TextNode }

// Comment is an XML comment. Data excludes the <!-- and --> markers.
type Comment struct {
	Data string
}

// Type implements Node.
func (*Comment) Type() NodeType { return CommentNode }

// ProcInst is a processing instruction such as <?xml version="1.0"?>.
type ProcInst struct {
	Target string
	Inst   string
}

// Type implements Node.
func (*ProcInst) Type() NodeType { return ProcInstNode }

// Directive is a markup declaration such as <!DOCTYPE svg>. Data excludes
// the <! and > markers.
type Directive struct {
	Data string
}

// Type implements Node.
func (*Directive) Type() NodeType { return DirectiveNode }

// SplitName splits a qualified name into prefix and local part.
// Example: "xlink:href" -> ("xlink", "href")
// Example: "rect" -> ("", "rect")
func SplitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// JoinName is the inverse of SplitName.
func JoinName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
