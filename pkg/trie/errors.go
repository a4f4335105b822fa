package trie

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is reported by At when the key's path or terminal value is
// absent. Test with errors.Is.
var ErrKeyNotFound = errors.New("key not found in trie")

// KeyError carries the missing key alongside ErrKeyNotFound.
type KeyError[E comparable] struct {
	Key []E
}

func (e *KeyError[E]) Error() string {
	return fmt.Sprintf("%v: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyError[E]) Unwrap() error {
	return ErrKeyNotFound
}
