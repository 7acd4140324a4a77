package dictionary

import (
	"github.com/kumarlokesh/triedict/internal/trie"
)

// BuildTrie constructs a prefix tree seeded with every word in d.
func BuildTrie(d Interface) *trie.Trie {
	t := trie.New()
	for _, w := range d.Words() {
		t.Insert(w)
	}
	return t
}

// FromTrie adapts a trie to the dictionary interface: Contains is exact
// membership and Words enumerates every stored key in lexicographic order.
func FromTrie(t *trie.Trie) Interface {
	return trieDict{t: t}
}

type trieDict struct {
	t *trie.Trie
}

var _ Interface = trieDict{}

func (d trieDict) Contains(w string) bool {
	return d.t.Contains(w)
}

func (d trieDict) Words() []string {
	return d.t.Words("")
}
