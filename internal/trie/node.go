package trie

import (
	"fmt"
	"strings"
)

// alphabetSize is the number of child slots per node, one per lowercase
// ASCII letter.
const alphabetSize = 26

// Node is a single node in the trie. Each child slot corresponds to one
// lowercase letter ('a' at index 0 through 'z' at index 25); a nil slot
// means no inserted key continues with that letter. Nodes are created
// lazily by Insert and never removed.
type Node struct {
	children [alphabetSize]*Node

	// isEnd marks that some inserted key terminates exactly at this node
	isEnd bool
}

// newNode creates an empty node with no children.
func newNode() *Node {
	return &Node{}
}

// IsEndOfWord reports whether an inserted key terminates exactly at this node.
func (n *Node) IsEndOfWord() bool {
	return n.isEnd
}

// String summarizes the node for debugging: the letters that have a present
// child, and the end-of-word flag. It does not recurse into descendants, so
// the output is bounded regardless of how deep the tree below the node is.
func (n *Node) String() string {
	var letters []string
	for i, child := range n.children {
		if child != nil {
			letters = append(letters, string(rune('a'+i)))
		}
	}
	return fmt.Sprintf("children: [%s], isEndOfWord: %t", strings.Join(letters, " "), n.isEnd)
}
