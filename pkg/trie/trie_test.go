package trie

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTrie verifies that a new trie is empty and usable.
func TestNewTrie(t *testing.T) {
	tr := New[rune, int]()
	assert.NotNil(t, tr, "Trie should not be nil upon creation")
	assert.True(t, tr.Empty(), "A new trie should be empty")
	assert.Equal(t, 0, tr.Len(), "A new trie should have length 0")
	assert.False(t, tr.Contains([]rune("a")), "A new trie should contain nothing")
}

// TestZeroValueTrie verifies the zero value works without a constructor.
func TestZeroValueTrie(t *testing.T) {
	var tr Trie[byte, string]
	tr.Insert([]byte("k"), "v")
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, "v", *tr.Find([]byte("k")))
}

func TestInsertAndFind(t *testing.T) {
	tr := New[rune, int]()
	v, inserted := tr.Insert([]rune("apple"), 5)

	assert.True(t, inserted, "First insert should report insertion")
	assert.Equal(t, 5, *v, "Insert should return the stored value")
	assert.True(t, tr.Contains([]rune("apple")), "Inserted key should be contained")
	require.NotNil(t, tr.Find([]rune("apple")), "Find should locate the inserted key")
	assert.Equal(t, 5, *tr.Find([]rune("apple")))
	assert.Equal(t, 1, tr.Len())
}

// TestInsertIfAbsent verifies a second insert at the same key keeps the first value.
func TestInsertIfAbsent(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("key"), 1)
	v, inserted := tr.Insert([]rune("key"), 2)

	assert.False(t, inserted, "Second insert at the same key should not insert")
	assert.Equal(t, 1, *v, "Existing value should be returned untouched")
	assert.Equal(t, 1, tr.Len(), "Length should not change on a rejected insert")
	assert.Equal(t, 1, *tr.Find([]rune("key")))
}

// TestGetCreatesDefault verifies subscript-style access creates missing entries.
func TestGetCreatesDefault(t *testing.T) {
	tr := New[rune, int]()
	v := tr.Get([]rune("fresh"))

	require.NotNil(t, v)
	assert.Equal(t, 0, *v, "Get should default-construct the value")
	assert.True(t, tr.Contains([]rune("fresh")), "Get must leave the key contained")
	assert.Equal(t, 1, tr.Len(), "Get should count a newly created value")

	*v = 42
	assert.Equal(t, 42, *tr.Find([]rune("fresh")), "Mutation through Get must be visible")

	again := tr.Get([]rune("fresh"))
	assert.Equal(t, 42, *again, "A second Get must find the existing value")
	assert.Equal(t, 1, tr.Len(), "A second Get must not grow the trie")
}

func TestAt(t *testing.T) {
	tr := New[rune, string]()
	tr.Insert([]rune("present"), "here")

	v, err := tr.At([]rune("present"))
	require.NoError(t, err)
	assert.Equal(t, "here", *v)

	*v = "changed"
	assert.Equal(t, "changed", *tr.Find([]rune("present")), "Mutation through At must be visible")

	_, err = tr.At([]rune("absent"))
	assert.ErrorIs(t, err, ErrKeyNotFound, "At on a missing key should report ErrKeyNotFound")
	assert.False(t, tr.Contains([]rune("absent")), "At must not create the missing path")
	assert.Equal(t, 1, tr.Len(), "At must not mutate the trie")
}

// TestAtOnValuelessPrefix verifies At fails on a path that exists only as a prefix.
func TestAtOnValuelessPrefix(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("apple"), 1)

	_, err := tr.At([]rune("app"))
	assert.ErrorIs(t, err, ErrKeyNotFound, "A value-less prefix node is not a stored key")
	assert.False(t, tr.Contains([]rune("app")))
	assert.Nil(t, tr.Find([]rune("app")))
}

// TestPrefixIndependence verifies a key and its strict prefix are independent entries.
func TestPrefixIndependence(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("app"), 1)
	tr.Insert([]rune("apple"), 2)

	assert.Equal(t, 1, *tr.Find([]rune("app")))
	assert.Equal(t, 2, *tr.Find([]rune("apple")))
	assert.Equal(t, 2, tr.Len())

	assert.True(t, tr.Erase([]rune("app")), "Erasing the prefix key should succeed")
	assert.False(t, tr.Contains([]rune("app")))
	assert.Equal(t, 2, *tr.Find([]rune("apple")), "The longer key must survive erasure of its prefix")

	tr.Insert([]rune("app"), 1)
	assert.True(t, tr.Erase([]rune("apple")), "Erasing the longer key should succeed")
	assert.Equal(t, 1, *tr.Find([]rune("app")), "The prefix key must survive erasure of its extension")
}

func TestErase(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("gone"), 1)

	assert.True(t, tr.Erase([]rune("gone")), "Erase should report removal")
	assert.False(t, tr.Contains([]rune("gone")))
	assert.Equal(t, 0, tr.Len(), "Length should drop by one after a successful erase")

	assert.False(t, tr.Erase([]rune("gone")), "A second erase of the same key should miss")
	assert.Equal(t, 0, tr.Len(), "A missed erase must leave the length unchanged")
}

func TestEraseMissingPath(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("abc"), 1)

	assert.False(t, tr.Erase([]rune("xyz")), "Erase of an absent path should miss")
	assert.False(t, tr.Erase([]rune("abcd")), "Erase past a stored key should miss")
	assert.False(t, tr.Erase([]rune("ab")), "Erase of a value-less prefix should miss")
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 1, *tr.Find([]rune("abc")))
}

// TestErasePrunesDeadChains verifies no value-less leaf chain survives an erase.
func TestErasePrunesDeadChains(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("a"), 1)
	tr.Insert([]rune("abcdef"), 2)

	require.True(t, tr.Erase([]rune("abcdef")))

	// The chain b->c->d->e->f below "a" must be gone: walking any of it
	// fails at the first element past "a".
	assert.Nil(t, tr.findNode([]rune("ab")), "Pruning must remove the whole dead chain")
	assert.Equal(t, 1, *tr.Find([]rune("a")), "The surviving key keeps its value")
	assert.Equal(t, 1, tr.Len())
}

// TestEraseKeepsSharedPrefix verifies pruning stops at a branch still in use.
func TestEraseKeepsSharedPrefix(t *testing.T) {
	tr := New[rune, int]()
	tr.Insert([]rune("carpet"), 1)
	tr.Insert([]rune("carton"), 2)

	require.True(t, tr.Erase([]rune("carpet")))

	assert.Nil(t, tr.findNode([]rune("carp")), "The erased branch is pruned")
	assert.NotNil(t, tr.findNode([]rune("car")), "The shared prefix path survives")
	assert.Equal(t, 2, *tr.Find([]rune("carton")))
}

func TestClear(t *testing.T) {
	tr := New[rune, int]()
	keys := []string{"one", "two", "three"}
	for i, k := range keys {
		tr.Insert([]rune(k), i)
	}
	require.Equal(t, len(keys), tr.Len())

	tr.Clear()

	assert.Equal(t, 0, tr.Len(), "Clear should reset the length")
	assert.True(t, tr.Empty())
	for _, k := range keys {
		assert.False(t, tr.Contains([]rune(k)), "Clear should drop key %q", k)
	}

	// The trie stays usable after Clear.
	tr.Insert([]rune("again"), 9)
	assert.Equal(t, 1, tr.Len())
}

// TestLenCountsDistinctKeys verifies N distinct inserts yield length N.
func TestLenCountsDistinctKeys(t *testing.T) {
	tr := New[rune, int]()
	keys := []string{"a", "ab", "abc", "b", "ba", "c"}
	for i, k := range keys {
		_, inserted := tr.Insert([]rune(k), i)
		assert.True(t, inserted, "Key %q should be new", k)
	}
	assert.Equal(t, len(keys), tr.Len())
}

// TestByteElements exercises a non-rune element type through the same API.
func TestByteElements(t *testing.T) {
	tr := New[byte, string]()
	tr.Insert([]byte{0x01, 0x02}, "bin")

	assert.True(t, tr.Contains([]byte{0x01, 0x02}))
	assert.False(t, tr.Contains([]byte{0x01}))
	assert.True(t, tr.Erase([]byte{0x01, 0x02}))
	assert.True(t, tr.Empty())
}

// TestIntTokenElements uses token-path keys, e.g. route segments hashed to ints.
func TestIntTokenElements(t *testing.T) {
	tr := New[int, string]()
	tr.Insert([]int{10, 20, 30}, "deep")
	tr.Insert([]int{10}, "shallow")

	assert.Equal(t, "deep", *tr.Find([]int{10, 20, 30}))
	assert.Equal(t, "shallow", *tr.Find([]int{10}))
	assert.Nil(t, tr.Find([]int{10, 20}))
}

func BenchmarkInsert(b *testing.B) {
	keys := randomKeys(b.N, 8, 24)
	tr := New[byte, int]()
	b.ResetTimer()

	for i, key := range keys {
		tr.Insert(key, i)
	}
}

func BenchmarkFind(b *testing.B) {
	keys := randomKeys(1000, 8, 24)
	tr := New[byte, int]()
	for i, key := range keys {
		tr.Insert(key, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Find(keys[rand.Intn(len(keys))])
	}
}

func BenchmarkEraseInsertCycle(b *testing.B) {
	keys := randomKeys(1000, 8, 24)
	tr := New[byte, int]()
	for i, key := range keys {
		tr.Insert(key, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		tr.Erase(key)
		tr.Insert(key, i)
	}
}

// randomKeys generates n random byte keys with lengths in [minLen, maxLen].
func randomKeys(n, minLen, maxLen int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		key := make([]byte, rand.Intn(maxLen-minLen+1)+minLen)
		for j := range key {
			key[j] = byte(rand.Intn(26)) + 'a'
		}
		keys[i] = key
	}
	return keys
}

func ExampleTrie_Get() {
	tr := New[rune, int]()
	*tr.Get([]rune("applesauce")) = 5
	fmt.Println(*tr.Get([]rune("applesauce")))
	// Output: 5
}
