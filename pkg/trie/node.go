package trie

// node is one position in the key-element path space. element labels the edge
// from the parent node; the root's element is a sentinel and never meaningful.
type node[E comparable, V any] struct {
	element  E
	children []*node[E, V] // creation order, labels unique; nil when none
	value    *V            // nil means no key terminates here
}

// child returns the child labeled elt, or nil.
// Lookup is a linear scan; typical fan-out is small (alphabet-sized).
func (n *node[E, V]) child(elt E) *node[E, V] {
	for _, c := range n.children {
		if c.element == elt {
			return c
		}
	}
	return nil
}

// childOrNew returns the child labeled elt, appending a new one if absent.
func (n *node[E, V]) childOrNew(elt E) *node[E, V] {
	if c := n.child(elt); c != nil {
		return c
	}
	c := &node[E, V]{element: elt}
	n.children = append(n.children, c)
	return c
}

// removeChild unlinks the child labeled elt, preserving sibling order.
func (n *node[E, V]) removeChild(elt E) {
	for i, c := range n.children {
		if c.element == elt {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// prunable reports whether the node holds neither a value nor children,
// i.e. it is dead weight that erase must not leave reachable.
func (n *node[E, V]) prunable() bool {
	return n.value == nil && len(n.children) == 0
}
