package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/svgerrors"
)

// DefaultMaxDepth is the element nesting limit used when WithMaxDepth is not given.
const DefaultMaxDepth = 1000

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// ElementHandler is called for each element before its children are visited.
type ElementHandler func(wc *WalkContext, el *document.Element) Action

// PostElementHandler is called for each element after its children were
// visited. It is not called for elements whose handler returned SkipChildren
// or Stop.
type PostElementHandler func(wc *WalkContext, el *document.Element)

// TextHandler is called for each character data node inside the root element.
type TextHandler func(wc *WalkContext, text *document.Text) Action

// Walker traverses a Document in document order.
type Walker struct {
	onElement     ElementHandler
	onPostElement PostElementHandler
	onText        TextHandler

	maxDepth int
	userCtx  context.Context

	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: DefaultMaxDepth,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithElementHandler sets the handler called for every element.
func WithElementHandler(fn ElementHandler) Option {
	return func(w *Walker) { w.onElement = fn }
}

// WithPostElementHandler sets the handler called after an element's children.
func WithPostElementHandler(fn PostElementHandler) Option {
	return func(w *Walker) { w.onPostElement = fn }
}

// WithTextHandler sets the handler called for character data.
// Returning SkipChildren from a text handler has the same effect as Continue.
func WithTextHandler(fn TextHandler) Option {
	return func(w *Walker) { w.onText = fn }
}

// WithMaxDepth sets the maximum element nesting depth (the root is depth 1).
// Default is DefaultMaxDepth. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext sets the context for cancellation and deadline propagation.
// The context is available to handlers via wc.Context(), and the walk ends
// with ctx.Err() once it is cancelled.
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) { w.userCtx = ctx }
}

// Walk traverses doc and calls the registered handlers for each node.
func Walk(doc *document.Document, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}
	if doc.Root == nil {
		return fmt.Errorf("walker: Document has no root element")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(doc)
}

func (w *Walker) walk(doc *document.Document) error {
	w.stopped = false
	state := &walkState{ctx: w.userCtx}
	return w.walkElement(doc.Root, "/"+doc.Root.Name, 1, state)
}

func (w *Walker) walkElement(el *document.Element, path string, depth int, state *walkState) error {
	if w.stopped {
		return nil
	}
	if state.ctx != nil {
		if err := state.ctx.Err(); err != nil {
			return err
		}
	}
	if depth > w.maxDepth {
		return &svgerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(depth),
			Message:      path,
		}
	}

	// Segments are fixed before the handler runs, since it may rename el or
	// its siblings.
	childPaths := childElementPaths(el, path)

	wc := state.buildContext(path, depth)
	if w.onElement != nil {
		if !w.handleAction(w.onElement(wc, el)) {
			return nil
		}
	}

	childState := state.push(el, path)
	for i, child := range el.Children {
		if w.stopped {
			return nil
		}
		switch c := child.(type) {
		case *document.Element:
			if err := w.walkElement(c, childPaths[i], depth+1, childState); err != nil {
				return err
			}
		case *document.Text:
			if w.onText != nil {
				w.handleAction(w.onText(childState.buildContext(path, depth), c))
			}
		}
	}

	if w.onPostElement != nil && !w.stopped {
		w.onPostElement(wc, el)
	}
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}

// childElementPaths returns the path of each element child of el, indexed by
// position in el.Children. Each segment is 1-based among siblings with the
// same name, as in XPath.
func childElementPaths(el *document.Element, path string) []string {
	paths := make([]string, len(el.Children))
	seen := make(map[string]int)
	for i, child := range el.Children {
		c, ok := child.(*document.Element)
		if !ok {
			continue
		}
		seen[c.Name]++
		paths[i] = fmt.Sprintf("%s/%s[%d]", path, c.Name, seen[c.Name])
	}
	return paths
}
