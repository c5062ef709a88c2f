// Package walker provides a traversal API for svgcase documents.
//
// The walker visits every element of a [document.Document] in document order
// (pre-order, depth-first), allowing handlers to receive and mutate nodes.
// The renamer is built on it.
//
// # Quick Start
//
// Walk a document and print every element path:
//
//	result, _ := document.Parse("try.svg")
//
//	err := walker.Walk(result.Document,
//	    walker.WithElementHandler(func(wc *walker.WalkContext, el *document.Element) walker.Action {
//	        fmt.Println(wc.Path)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Paths
//
// [WalkContext.Path] is XPath-like: "/svg/g[1]/rect[2]" is the second rect
// child of the first g child of the root. The segments for an element's
// children are computed when the element is entered, so a handler may rename
// elements without changing the paths reported for their siblings.
//
// # Limits
//
// Nesting deeper than [WithMaxDepth] (default [DefaultMaxDepth]) ends the walk
// with a *svgerrors.ResourceLimitError. A context set with [WithUserContext]
// ends the walk with the context's error once it is cancelled.
package walker
