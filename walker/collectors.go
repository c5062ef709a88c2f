package walker

import "github.com/erraggy/svgcase/document"

// ElementInfo contains information about a collected element.
type ElementInfo struct {
	// Element is the collected element.
	Element *document.Element

	// Path is the full path to the element.
	Path string

	// Depth is the nesting level; the root is 1.
	Depth int
}

// ElementCollector holds elements collected during a walk.
type ElementCollector struct {
	// All contains all elements in document order.
	All []*ElementInfo

	// ByPath provides lookup by path.
	ByPath map[string]*ElementInfo

	// ByName groups elements by tag name, in document order.
	ByName map[string][]*ElementInfo

	// AttributeKeys counts attribute keys across all elements.
	AttributeKeys map[string]int
}

// Names returns the distinct tag names in order of first appearance.
func (c *ElementCollector) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, info := range c.All {
		if !seen[info.Element.Name] {
			seen[info.Element.Name] = true
			names = append(names, info.Element.Name)
		}
	}
	return names
}

// Keys returns the distinct attribute keys in order of first appearance.
func (c *ElementCollector) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, info := range c.All {
		for _, k := range info.Element.Attrs.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// CollectElements walks the document and collects all elements.
func CollectElements(doc *document.Document) (*ElementCollector, error) {
	collector := &ElementCollector{
		All:           make([]*ElementInfo, 0),
		ByPath:        make(map[string]*ElementInfo),
		ByName:        make(map[string][]*ElementInfo),
		AttributeKeys: make(map[string]int),
	}

	err := Walk(doc,
		WithElementHandler(func(wc *WalkContext, el *document.Element) Action {
			info := &ElementInfo{
				Element: el,
				Path:    wc.Path,
				Depth:   wc.Depth,
			}

			collector.All = append(collector.All, info)
			collector.ByPath[wc.Path] = info
			collector.ByName[el.Name] = append(collector.ByName[el.Name], info)
			for _, a := range el.Attrs {
				collector.AttributeKeys[a.Key]++
			}

			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}
