// Package main demonstrates basic usage of the suggest library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/suggest"
)

func main() {
	fmt.Println("Basic Prompt Example")
	fmt.Println("Type to filter, arrows to choose, Enter to confirm, Ctrl+C to cancel")
	fmt.Println()

	fruit, err := suggest.Ask("Pick a fruit",
		suggest.WithSuggest(suggest.NewPrefixFilter([]string{
			"apple", "apricot", "banana", "blueberry", "cherry", "grape", "mango",
		})),
	)
	if err != nil {
		if errors.Is(err, suggest.ErrInterrupted) {
			fmt.Println("Cancelled")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("You picked: %s\n", fruit)
}
