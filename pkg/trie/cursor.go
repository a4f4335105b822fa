package trie

// Entry is one (key, value) pair produced by a cursor. The key is
// reconstructed from the element labels on the root-to-node path; keys are
// never stored in the trie itself.
type Entry[E comparable, V any] struct {
	Key   []E
	Value V
}

// Cursor walks the trie depth-first in pre-order, yielding an Entry for every
// value-bearing node. Siblings are visited in creation order, which equals
// the insertion order of their branches, NOT lexicographic order.
//
// A cursor is single-pass and forward-only; to restart, take a new cursor
// from the trie. Mutating the trie while a cursor is live leaves the cursor
// at an undefined position (precondition, not checked at runtime).
type Cursor[E comparable, V any] struct {
	stack []frame[E, V]
}

type frame[E comparable, V any] struct {
	node   *node[E, V]
	prefix []E // key accumulated from root to node
}

// Cursor returns a cursor positioned before the first entry.
func (t *Trie[E, V]) Cursor() *Cursor[E, V] {
	return &Cursor[E, V]{stack: []frame[E, V]{{node: &t.root}}}
}

// Next produces the next (key, value) pair, or ok=false when the walk is
// exhausted. The returned key slice is owned by the caller.
func (c *Cursor[E, V]) Next() (entry Entry[E, V], ok bool) {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		// Push children in reverse so the first-created sibling pops first.
		for i := len(top.node.children) - 1; i >= 0; i-- {
			child := top.node.children[i]
			prefix := make([]E, len(top.prefix), len(top.prefix)+1)
			copy(prefix, top.prefix)
			c.stack = append(c.stack, frame[E, V]{
				node:   child,
				prefix: append(prefix, child.element),
			})
		}

		if top.node.value != nil {
			return Entry[E, V]{Key: top.prefix, Value: *top.node.value}, true
		}
	}
	return Entry[E, V]{}, false
}

// Entries drains a fresh cursor into a slice. The slice length equals Len.
func (t *Trie[E, V]) Entries() []Entry[E, V] {
	var entries []Entry[E, V]
	cursor := t.Cursor()
	for {
		entry, ok := cursor.Next()
		if !ok {
			return entries
		}
		entries = append(entries, entry)
	}
}
