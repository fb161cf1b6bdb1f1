// Package main demonstrates repeated prompts with fuzzy suggestions.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/suggest"
)

var commands = []string{
	"help",
	"list",
	"create project",
	"create file",
	"delete item",
	"update item",
	"status",
	"exit",
}

func main() {
	fmt.Println("Fuzzy Autocomplete Example")
	fmt.Println("==========================")
	fmt.Println("Type a few letters of a command, e.g. 'crf' for 'create file'")
	fmt.Println("Choose 'exit' or press Ctrl+C to quit")
	fmt.Println()

	p, err := suggest.New("Command",
		suggest.WithSuggest(suggest.NewFuzzyFilter(commands)),
		suggest.WithDelimiter("›"),
		suggest.WithColorScheme(suggest.ThemeDark),
		suggest.WithMaxSuggestions(5),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		result, err := p.Run()
		if err != nil {
			if errors.Is(err, suggest.ErrInterrupted) || errors.Is(err, suggest.ErrEOF) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		args := strings.Fields(result)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "help":
			fmt.Println("Available commands:")
			for _, c := range commands {
				fmt.Printf("  %s\n", c)
			}
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
