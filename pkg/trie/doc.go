// ## Overview
// Package trie implements a generic trie (prefix tree) that maps key
// sequences to values. Keys are slices of any comparable element type and
// values can be any type, so the same container serves string keys
// ([]rune or []byte elements) as well as token paths or bit sequences.
//
// Stored keys share path nodes for common prefixes. A value at a node is what
// distinguishes "this path spells a stored key" from "this path is merely a
// prefix of some other stored key", so a key and its strict prefixes are
// independent entries.
//
// ## Example usage:
//
//	counts := trie.New[rune, int]()
//
//	// subscript-style access: creates the entry when missing
//	*counts.Get([]rune("apple")) = 5
//
//	// insert-if-absent: never overwrites
//	_, inserted := counts.Insert([]rune("app"), 1) // inserted == true
//	_, inserted = counts.Insert([]rune("app"), 9)  // inserted == false
//
//	// lookup
//	if v := counts.Find([]rune("apple")); v != nil {
//	    fmt.Println(*v) // Output: 5
//	}
//
//	// ordered traversal: depth-first pre-order, siblings in insertion order
//	cursor := counts.Cursor()
//	for entry, ok := cursor.Next(); ok; entry, ok = cursor.Next() {
//	    fmt.Printf("%s=%d\n", string(entry.Key), entry.Value)
//	}
//
//	counts.Erase([]rune("app")) // "apple" survives, prefix nodes are kept
//
// The trie is not safe for concurrent mutation; guard it externally when
// shared between goroutines.
package trie
