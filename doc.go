// Package suggest provides a single-line interactive terminal prompt with a
// live, filtered suggestion list drawn beneath the input line.
//
// Type to filter, arrows to choose, enter to confirm:
//
//	? Pick > ap
//	apple
//	apricot
//
// Quick Start:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/suggest"
//	)
//
//	func main() {
//		fruit, err := suggest.Ask("Pick",
//			suggest.WithSuggest(suggest.NewPrefixFilter([]string{"apple", "apricot", "banana"})),
//		)
//		if errors.Is(err, suggest.ErrInterrupted) {
//			fmt.Println("cancelled")
//			return
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(fruit)
//	}
//
// Key Bindings:
//
//   - Printable input: appended to the input, suggestions are recomputed
//   - Backspace: removes the last character (rings the bell on empty input)
//   - Up/Down arrows: move the selection cursor, wrapping at both ends
//   - Enter: resolves to the selected suggestion, or "" when there is none
//   - Ctrl+C: aborts with ErrInterrupted
//
// Unrecognized control codes and escape sequences are ignored. Custom
// bindings are set with a KeyMap:
//
//	keyMap := suggest.NewDefaultKeyMap()
//	keyMap.Bind('\b', suggest.ActionBackspace) // Ctrl+H
//
// Masking:
//
// The Replace function changes how the input is drawn, never what is
// submitted. StylePassword draws one '*' per character and StyleInvisible
// draws nothing:
//
//	secret, err := suggest.Ask("Token", suggest.WithStyle("password"))
//
// Terminal Output:
//
// The prompt repaints by counting the lines it drew last time and erasing
// them with relative cursor movement; it never reads the terminal back.
// Only one prompt may be active on a terminal at a time. After Enter or
// Ctrl+C the closing line stays on screen with a ✔ or ✖ symbol.
//
// Thread Safety:
//
// Prompt instances are not thread-safe. Each prompt should be used from a
// single goroutine.
package suggest
