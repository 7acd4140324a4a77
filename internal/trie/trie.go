// Package trie implements an in-memory prefix tree over lowercase ASCII
// letters, supporting insertion, exact membership queries, and ordered
// enumeration of keys by prefix.
package trie

import (
	"strings"
)

// Trie is a prefix tree over the 26 lowercase ASCII letters. The zero value
// is not usable; use New. A Trie is safe for any number of concurrent
// readers, but Insert must be serialized against all other operations by
// the caller.
type Trie struct {
	root *Node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}

// Root returns the root node for diagnostic printing.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds word to the trie. The input is lowercased and characters
// outside a-z are skipped, so "ap'ple" stores the key "apple". Inserting a
// string with no letters marks the empty key. Inserting the same key twice
// allocates nothing and simply re-marks it.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, ch := range strings.ToLower(word) {
		if ch < 'a' || ch > 'z' {
			continue
		}
		idx := ch - 'a'
		if node.children[idx] == nil {
			node.children[idx] = newNode()
		}
		node = node.children[idx]
	}
	node.isEnd = true
}

// Contains reports whether word was previously inserted as a complete key.
// The input is lowercased first. Unlike Insert, any character outside a-z
// makes Contains return false immediately instead of being skipped, so only
// the pure-letter form of a stored key is queryable.
func (t *Trie) Contains(word string) bool {
	node := t.root
	for _, ch := range strings.ToLower(word) {
		if ch < 'a' || ch > 'z' {
			return false
		}
		child := node.children[ch-'a']
		if child == nil {
			return false
		}
		node = child
	}
	return node.isEnd
}

// Words returns every inserted key that begins with prefix, in ascending
// lexicographic order. The prefix follows Insert's normalization: it is
// lowercased and characters outside a-z are skipped. If the prefix itself
// is a stored key it is the first result. The result is empty, never nil,
// when nothing matches.
func (t *Trie) Words(prefix string) []string {
	words := []string{}
	node := t.root
	var walked strings.Builder
	for _, ch := range strings.ToLower(prefix) {
		if ch < 'a' || ch > 'z' {
			continue
		}
		child := node.children[ch-'a']
		if child == nil {
			return words
		}
		node = child
		walked.WriteRune(ch)
	}
	collectWords(node, walked.String(), &words)
	return words
}

// collectWords appends every key in the subtree rooted at node, visiting
// children in ascending letter order so results come out sorted.
func collectWords(node *Node, prefix string, words *[]string) {
	if node.isEnd {
		*words = append(*words, prefix)
	}
	for i, child := range node.children {
		if child == nil {
			continue
		}
		collectWords(child, prefix+string(rune('a'+i)), words)
	}
}
