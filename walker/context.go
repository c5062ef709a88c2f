package walker

import (
	"context"

	"github.com/erraggy/svgcase/document"
)

// WalkContext provides contextual information about the current node being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// Path is the XPath-like location of the current element, computed from
	// the names the elements had when their parent was entered.
	// Example: "/svg/g[1]/rect[2]". For text nodes it is the enclosing element's path.
	Path string

	// Depth is the element nesting level; the root element is 1.
	Depth int

	// Parent is the enclosing element, nil for the root element.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of WalkContext with the new context.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}

// IsRoot reports whether the current element is the document root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Parent == nil
}

// walkState tracks context as we descend through the document.
type walkState struct {
	parent *ParentInfo
	ctx    context.Context
}

// buildContext creates a WalkContext from the current walk state.
func (s *walkState) buildContext(path string, depth int) *WalkContext {
	return &WalkContext{
		Path:   path,
		Depth:  depth,
		Parent: s.parent,
		ctx:    s.ctx,
	}
}

// push returns the state for the children of el.
func (s *walkState) push(el *document.Element, path string) *walkState {
	return &walkState{
		parent: &ParentInfo{Element: el, Path: path, Parent: s.parent},
		ctx:    s.ctx,
	}
}
