package dictionary

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a dictionary from a file of newline-separated words. Blank
// lines and surrounding whitespace are ignored.
func Load(path string) (Interface, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}

	return WithWords(words...), nil
}
