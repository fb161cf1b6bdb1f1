package suggest

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ColorScheme defines the colors used to draw the prompt.
type ColorScheme struct {
	Name       string `json:"name"`
	Pending    Color  `json:"pending"`    // status symbol while the prompt is active
	Done       Color  `json:"done"`       // status symbol after submit
	Aborted    Color  `json:"aborted"`    // status symbol after Ctrl+C
	Delimiter  Color  `json:"delimiter"`  // default delimiter between label and input
	Suggestion Color  `json:"suggestion"` // unselected suggestion lines
	Selected   Color  `json:"selected"`   // suggestion under the selection cursor
	Plain      bool   `json:"plain"`      // draw without any escape sequences
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
	// Default leaves the terminal's foreground color untouched.
	Default bool `json:"default"`
}

// ThemeDefault is the default color scheme: cyan pending symbol, green tick, red cross.
var ThemeDefault = &ColorScheme{
	Name:       "default",
	Pending:    Color{R: 0, G: 205, B: 205},
	Done:       Color{R: 0, G: 205, B: 0},
	Aborted:    Color{R: 205, G: 0, B: 0},
	Delimiter:  Color{R: 128, G: 128, B: 128},
	Suggestion: Color{Default: true},
	Selected:   Color{R: 0, G: 205, B: 205},
}

// ThemeDark is a dark theme with bright accents.
var ThemeDark = &ColorScheme{
	Name:       "dark",
	Pending:    Color{R: 102, G: 217, B: 239, Bold: true},
	Done:       Color{R: 80, G: 250, B: 123, Bold: true},
	Aborted:    Color{R: 255, G: 85, B: 85, Bold: true},
	Delimiter:  Color{R: 98, G: 114, B: 164},
	Suggestion: Color{R: 248, G: 248, B: 242},
	Selected:   Color{R: 189, G: 147, B: 249, Bold: true},
}

// ThemePlain draws everything without escape sequences.
var ThemePlain = &ColorScheme{
	Name:  "plain",
	Plain: true,
}

// Themes lists the built-in color schemes by name.
var Themes = map[string]*ColorScheme{
	ThemeDefault.Name: ThemeDefault,
	ThemeDark.Name:    ThemeDark,
	ThemePlain.Name:   ThemePlain,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	if c.Bold {
		codes = append(codes, "1")
	}
	if !c.Default {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	}
	if len(codes) == 0 {
		return ""
	}

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps s in the color unless the scheme is plain.
func (cs *ColorScheme) paint(c Color, s string) string {
	if cs == nil || cs.Plain || s == "" {
		return s
	}
	seq := c.ToANSI()
	if seq == "" {
		return s
	}
	return seq + s + Reset()
}

// Status is the lifecycle status of a prompt as seen by a symbol function.
type Status int

const (
	// StatusPending means the prompt is still accepting input.
	StatusPending Status = iota
	// StatusDone means the prompt was submitted.
	StatusDone
	// StatusAborted means the prompt was cancelled with Ctrl+C.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusAborted:
		return "aborted"
	default:
		return "pending"
	}
}

// Symbols holds the uncolored status glyphs.
var Symbols = map[Status]string{
	StatusPending: "?",
	StatusDone:    "✔",
	StatusAborted: "✖",
}

// Symbol returns the status glyph for s painted with the scheme's colors.
func (cs *ColorScheme) Symbol(s Status) string {
	switch s {
	case StatusDone:
		return cs.paint(cs.Done, Symbols[s])
	case StatusAborted:
		return cs.paint(cs.Aborted, Symbols[s])
	default:
		return cs.paint(cs.Pending, Symbols[StatusPending])
	}
}

// DefaultDelimiter returns the gray '>' drawn between label and input.
func (cs *ColorScheme) DefaultDelimiter() string {
	return cs.paint(cs.Delimiter, ">")
}

// StyleDefault displays the input as typed.
func StyleDefault(input string) string {
	return input
}

// StylePassword displays one '*' per typed character.
func StylePassword(input string) string {
	return strings.Repeat("*", uniseg.GraphemeClusterCount(input))
}

// StyleInvisible hides the input entirely.
func StyleInvisible(string) string {
	return ""
}

// Styles lists the built-in replace functions by name.
var Styles = map[string]func(string) string{
	"default":   StyleDefault,
	"password":  StylePassword,
	"invisible": StyleInvisible,
}
