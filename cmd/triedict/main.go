package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kumarlokesh/triedict/internal/dictionary"
	"github.com/kumarlokesh/triedict/internal/trie"
)

func main() {
	dictPath := flag.String("dict", "", "newline-separated word list to load before running the command")
	flag.Parse()

	if flag.NArg() == 0 {
		runDemo()
		return
	}

	args := flag.Args()
	switch args[0] {
	case "contains":
		if flag.NArg() < 2 {
			log.Fatal("Usage: triedict -dict words.txt contains <word>")
		}
		t := loadTrie(*dictPath)
		word := args[1]
		fmt.Printf("%s: %t\n", word, t.Contains(word))

	case "words":
		prefix := ""
		if flag.NArg() > 1 {
			prefix = args[1]
		}
		t := loadTrie(*dictPath)
		for _, w := range t.Words(prefix) {
			fmt.Println(w)
		}

	default:
		showHelp()
		os.Exit(1)
	}
}

// runDemo populates a small dictionary and prints a root summary plus a
// prefix listing.
func runDemo() {
	t := trie.New()
	t.Insert("apple")
	t.Insert("ape'")
	t.Insert("ball")

	fmt.Println(t.Root())
	fmt.Printf("Words with prefix 'ap': %v\n", t.Words("ap"))
}

func loadTrie(dictPath string) *trie.Trie {
	if dictPath == "" {
		log.Fatal("a -dict word list is required for this command")
	}
	d, err := dictionary.Load(dictPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	return dictionary.BuildTrie(d)
}

func showHelp() {
	fmt.Println("Usage: triedict [-dict words.txt] [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none)            run the built-in demonstration")
	fmt.Println("  contains <word>   report whether the word list contains the word")
	fmt.Println("  words [prefix]    list words starting with the prefix, in order")
}
