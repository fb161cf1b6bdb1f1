// Package main demonstrates masking the drawn input.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/suggest"
)

func main() {
	profiles := []string{"production", "staging", "development"}

	// The input is drawn as asterisks; suggestions show what will be submitted.
	profile, err := suggest.Ask("Profile",
		suggest.WithStyle("password"),
		suggest.WithSuggest(suggest.NewPrefixFilter(profiles)),
	)
	if errors.Is(err, suggest.ErrInterrupted) {
		fmt.Println("Cancelled")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Using profile %q\n", profile)
}
