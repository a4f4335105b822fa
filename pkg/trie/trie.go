package trie

// Trie is a generic prefix tree: it maps key sequences of element type E to
// values of type V. Common key prefixes share path nodes. The zero value is
// an empty trie ready for use.
//
// The structure is single-owner and not synchronized; callers coordinate
// concurrent access themselves (concurrent reads are fine while no writer
// runs).
type Trie[E comparable, V any] struct {
	root node[E, V] // sentinel element, never carries a value
	size int        // number of value-bearing nodes reachable from root
}

// New returns an empty trie.
func New[E comparable, V any]() *Trie[E, V] {
	return &Trie[E, V]{}
}

// Get returns a mutable pointer to the value stored at key, creating every
// missing node on the path and a zero value if none is stored yet. After Get
// returns, Contains(key) is true. Len grows by one exactly when the value was
// newly created.
func (t *Trie[E, V]) Get(key []E) *V {
	current := &t.root
	for _, elt := range key {
		current = current.childOrNew(elt)
	}
	if current.value == nil {
		current.value = new(V)
		t.size++
	}
	return current.value
}

// Insert stores value at key unless a value is already present there. It
// returns a pointer to the stored value (the existing one on collision) and
// whether an insertion actually happened. An existing value is never
// overwritten.
func (t *Trie[E, V]) Insert(key []E, value V) (*V, bool) {
	current := &t.root
	for _, elt := range key {
		current = current.childOrNew(elt)
	}
	if current.value == nil {
		current.value = &value
		t.size++
		return current.value, true
	}
	return current.value, false
}

// At returns a pointer to the value stored at key, or an error wrapping
// ErrKeyNotFound when the path does not exist or exists without a value.
// Unlike Get it never mutates the trie.
func (t *Trie[E, V]) At(key []E) (*V, error) {
	n := t.findNode(key)
	if n == nil || n.value == nil {
		return nil, &KeyError[E]{Key: key}
	}
	return n.value, nil
}

// Contains reports whether key is stored in the trie. A path that exists only
// as a prefix of longer keys does not count.
func (t *Trie[E, V]) Contains(key []E) bool {
	n := t.findNode(key)
	return n != nil && n.value != nil
}

// Find returns a pointer to the value stored at key, or nil when absent.
func (t *Trie[E, V]) Find(key []E) *V {
	n := t.findNode(key)
	if n == nil {
		return nil
	}
	return n.value
}

// Erase removes the value stored at key and reports whether a value was
// actually removed. While unwinding it prunes every node on the path that
// ends up with no value and no children, so erasing never leaves dead leaf
// chains behind. Erasing a key that is a strict prefix of another stored key
// clears only the value; the node stays because it still has children. A miss
// leaves the trie untouched.
func (t *Trie[E, V]) Erase(key []E) bool {
	return t.eraseRecursive(&t.root, key, 0)
}

// eraseRecursive descends to depth len(key); recursion depth is bounded by
// the key length.
func (t *Trie[E, V]) eraseRecursive(n *node[E, V], key []E, depth int) bool {
	if depth == len(key) {
		if n.value == nil {
			return false
		}
		n.value = nil
		t.size--
		return true
	}
	child := n.child(key[depth])
	if child == nil {
		return false
	}
	if t.eraseRecursive(child, key, depth+1) {
		if child.prunable() {
			n.removeChild(child.element)
		}
		return true
	}
	return false
}

// Len returns the number of stored keys.
func (t *Trie[E, V]) Len() int {
	return t.size
}

// Empty reports whether no keys are stored.
func (t *Trie[E, V]) Empty() bool {
	return t.size == 0
}

// Clear drops every stored key and node, resetting the trie to empty.
func (t *Trie[E, V]) Clear() {
	t.root.children = nil
	t.size = 0
}

// findNode walks the full key path and returns the terminal node, or nil when
// the path does not exist. The terminal node may be value-less.
func (t *Trie[E, V]) findNode(key []E) *node[E, V] {
	current := &t.root
	for _, elt := range key {
		if current = current.child(elt); current == nil {
			return nil
		}
	}
	return current
}
