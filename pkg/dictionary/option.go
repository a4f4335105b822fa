package dictionary

import "github.com/triekit/triemap/pkg/trie"

type Option func(*Dictionary) *Dictionary

// ComparatorOption decides a duplicate-key collision: return true to let the
// incoming record replace the existing one.
type ComparatorOption func(incoming Record, existing Record) bool

// New builds a dictionary with the default comparator (first writer wins).
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		entries:    trie.New[rune, Record](),
		comparator: DefaultComparator,
	}
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

func WithComparator(comparator ComparatorOption) Option {
	return func(d *Dictionary) *Dictionary {
		d.comparator = comparator
		return d
	}
}

// DefaultComparator keeps the incumbent record on a duplicate key, matching
// the trie's insert-if-absent contract.
func DefaultComparator(incoming Record, existing Record) bool {
	return false
}
