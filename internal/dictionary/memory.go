package dictionary

import (
	"sort"
	"strings"
)

type inMemory struct {
	words map[string]struct{}
}

// Assert that inMemory implements dictionary.Interface.
var _ Interface = &inMemory{}

// WithWords creates a new dictionary with the provided words, lowercased.
func WithWords(words ...string) Interface {
	dict := &inMemory{
		words: make(map[string]struct{}),
	}

	for _, w := range words {
		dict.words[strings.ToLower(w)] = struct{}{}
	}

	return dict
}

// Contains determines if the provided word is contained within the dictionary.
func (d *inMemory) Contains(w string) bool {
	_, ok := d.words[strings.ToLower(w)]
	return ok
}

// Words returns the stored words in sorted order.
func (d *inMemory) Words() []string {
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Filter creates a new dictionary only containing words for which filterFunc
// returns true.
func Filter(source Interface, filterFunc func(string) bool) Interface {
	dict := &inMemory{
		words: make(map[string]struct{}),
	}

	for _, w := range source.Words() {
		if filterFunc(w) {
			dict.words[w] = struct{}{}
		}
	}

	return dict
}
