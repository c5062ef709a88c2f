// Package document provides the XML document model used by svgcase, along
// with a parser and a serializer.
//
// The model is deliberately plain: an Element has a tag name, an ordered
// attribute list, and ordered children. Namespace prefixes are kept as part
// of names ("xlink:href") and never resolved to URIs, so a document can be
// renamed and written back without namespace rewriting.
//
// # Quick Start
//
//	result, err := document.Parse("try.svg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	root := result.Document.Root
//	fmt.Println(root.Name, root.Attrs.Len())
//
//	if err := document.WriteFile(result.Document, "out.svg", 0o644); err != nil {
//		log.Fatal(err)
//	}
//
// # Well-formedness
//
// Parsing fails with a *svgerrors.ParseError when the input is not
// well-formed: mismatched or unclosed tags, duplicate attributes, more than
// one root element, or text outside the root. Inputs declaring a non-UTF-8
// encoding are decoded with golang.org/x/net/html/charset; output is always
// UTF-8.
//
// # Serialization
//
// Write emits the tree without pretty-printing. Elements without children are
// self-closing. Comments, processing instructions and DOCTYPE directives are
// written back as read.
package document
