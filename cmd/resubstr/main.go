package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"resubstr/internal/relang"
)

func main() {
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	var expression, word string
	if _, err := fmt.Fscan(in, &expression, &word); err != nil {
		log.Fatalf("usage: %s [input file]; expects an expression and a word: %v", os.Args[0], err)
	}

	answer, err := relang.LongestMatchingSubstring(expression, word)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(answer)
}
