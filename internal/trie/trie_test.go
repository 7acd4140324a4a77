package trie

import (
	"testing"
)

func TestTrie_InsertAndContains(t *testing.T) {
	trie := New()

	if trie.Contains("hello") {
		t.Error("Contains(hello) = true on empty trie, want false")
	}

	trie.Insert("hello")
	if !trie.Contains("hello") {
		t.Error("Contains(hello) = false after Insert, want true")
	}
	if trie.Contains("hell") {
		t.Error("Contains(hell) = true, want false (prefix is not a stored key)")
	}

	trie.Insert("hell")
	if !trie.Contains("hell") {
		t.Error("Contains(hell) = false after Insert, want true")
	}
}

func TestTrie_CaseInsensitivity(t *testing.T) {
	trie := New()
	trie.Insert("Hello")

	if !trie.Contains("hello") {
		t.Error("Contains(hello) = false, want true")
	}
	if !trie.Contains("HELLO") {
		t.Error("Contains(HELLO) = false, want true")
	}
}

func TestTrie_NonAlphabeticCharacters(t *testing.T) {
	trie := New()

	// Insert skips non-letters, so the stored key is the letter-only form.
	trie.Insert("apple!")
	if !trie.Contains("apple") {
		t.Error("Contains(apple) = false after Insert(apple!), want true")
	}

	// Contains rejects non-letters outright rather than skipping them.
	if trie.Contains("apple%") {
		t.Error("Contains(apple%) = true, want false")
	}

	trie.Insert("a'b")
	if !trie.Contains("ab") {
		t.Error("Contains(ab) = false after Insert(a'b), want true")
	}
	if trie.Contains("a'b") {
		t.Error("Contains(a'b) = true, want false (non-letter input is rejected)")
	}
}

func TestTrie_EmptyKey(t *testing.T) {
	trie := New()

	if trie.Contains("") {
		t.Error("Contains(\"\") = true on empty trie, want false")
	}

	// A string with no letters marks the empty key at the root.
	trie.Insert("123")
	if !trie.Contains("") {
		t.Error("Contains(\"\") = false after Insert(123), want true")
	}
}

func TestTrie_Idempotence(t *testing.T) {
	trie := New()
	trie.Insert("apple")
	trie.Insert("apple")

	if !trie.Contains("apple") {
		t.Error("Contains(apple) = false, want true")
	}

	got := trie.Words("")
	want := []string{"apple"}
	if !stringSlicesEqual(got, want) {
		t.Errorf("Words(\"\") = %v, want %v", got, want)
	}
}

func TestTrie_Words(t *testing.T) {
	trie := New()
	for _, w := range []string{"apple", "ape", "ball"} {
		trie.Insert(w)
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix 'ap'",
			prefix: "ap",
			want:   []string{"ape", "apple"},
		},
		{
			name:   "prefix 'b'",
			prefix: "b",
			want:   []string{"ball"},
		},
		{
			name:   "non-existent prefix",
			prefix: "z",
			want:   []string{},
		},
		{
			name:   "empty prefix enumerates everything",
			prefix: "",
			want:   []string{"ape", "apple", "ball"},
		},
		{
			name:   "prefix that is itself a word comes first",
			prefix: "ape",
			want:   []string{"ape"},
		},
		{
			name:   "uppercase prefix is lowercased",
			prefix: "AP",
			want:   []string{"ape", "apple"},
		},
		{
			name:   "non-letters in prefix are skipped",
			prefix: "a-p",
			want:   []string{"ape", "apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trie.Words(tt.prefix)
			if !stringSlicesEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestTrie_WordsPrefixIsWordFirst(t *testing.T) {
	trie := New()
	trie.Insert("app")
	trie.Insert("apple")

	got := trie.Words("app")
	want := []string{"app", "apple"}
	if !stringSlicesEqual(got, want) {
		t.Errorf("Words(app) = %v, want %v", got, want)
	}
}

func TestNode_String(t *testing.T) {
	trie := New()
	trie.Insert("apple")
	trie.Insert("ball")

	got := trie.Root().String()
	want := "children: [a b], isEndOfWord: false"
	if got != want {
		t.Errorf("Root().String() = %q, want %q", got, want)
	}

	trie.Insert("")
	got = trie.Root().String()
	want = "children: [a b], isEndOfWord: true"
	if got != want {
		t.Errorf("Root().String() = %q, want %q", got, want)
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
