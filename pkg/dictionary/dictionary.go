package dictionary

import (
	"github.com/triekit/triemap/pkg/trie"
)

// Record is the generic key/value attribute set attached to one entry,
// e.g. the columns of one CSV row.
type Record map[string]string

// Dictionary is a string-keyed record store backed by a rune trie. Keys that
// share prefixes share path nodes, and enumeration follows the order in which
// key branches were first created.
type Dictionary struct {
	entries    *trie.Trie[rune, Record]
	comparator ComparatorOption
}

// Entry is one (key, record) pair as produced by All.
type Entry struct {
	Key    string
	Record Record
}

// Add stores rec under key if the key is absent. On a duplicate key the
// configured comparator decides: when it prefers the incoming record the
// stored one is replaced in place, otherwise the incumbent is kept. The
// returned result reports which of the three happened.
func (d *Dictionary) Add(key string, rec Record) *AddResult {
	stored, inserted := d.entries.Insert([]rune(key), rec)
	if inserted {
		return &AddResult{Key: key, Action: Inserted}
	}
	if d.comparator(rec, *stored) {
		previous := *stored
		*stored = rec
		return &AddResult{Key: key, Action: Replaced, Previous: previous}
	}
	return &AddResult{Key: key, Action: Kept}
}

// Lookup returns the record stored under key.
func (d *Dictionary) Lookup(key string) (Record, bool) {
	if rec := d.entries.Find([]rune(key)); rec != nil {
		return *rec, true
	}
	return nil, false
}

// Delete removes the entry under key, reporting whether one existed.
func (d *Dictionary) Delete(key string) bool {
	return d.entries.Erase([]rune(key))
}

// All returns every entry in traversal order: depth-first pre-order with
// siblings in key-branch insertion order.
func (d *Dictionary) All() []Entry {
	var all []Entry
	cursor := d.entries.Cursor()
	for {
		entry, ok := cursor.Next()
		if !ok {
			return all
		}
		all = append(all, Entry{Key: string(entry.Key), Record: entry.Value})
	}
}

// Len returns the number of stored entries.
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Clear drops every entry.
func (d *Dictionary) Clear() {
	d.entries.Clear()
}
