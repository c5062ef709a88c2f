package walker

import "github.com/erraggy/svgcase/document"

// ParentInfo provides information about an ancestor element in the traversal.
type ParentInfo struct {
	// Element is the ancestor element
	Element *document.Element

	// Path is the path to the ancestor
	Path string

	// Parent is the next ancestor up, nil for the root element.
	Parent *ParentInfo
}

// ParentElement returns the enclosing element, if any.
func (wc *WalkContext) ParentElement() (*document.Element, bool) {
	if wc.Parent == nil {
		return nil, false
	}
	return wc.Parent.Element, true
}

// Ancestors returns the enclosing elements from nearest to farthest.
func (wc *WalkContext) Ancestors() []*document.Element {
	var out []*document.Element
	for p := wc.Parent; p != nil; p = p.Parent {
		out = append(out, p.Element)
	}
	return out
}

// HasAncestor reports whether an enclosing element has the given name.
// Names are compared as they are at the time of the call, so an ancestor
// already renamed by a handler matches its new name.
func (wc *WalkContext) HasAncestor(name string) bool {
	for p := wc.Parent; p != nil; p = p.Parent {
		if p.Element.Name == name {
			return true
		}
	}
	return false
}
