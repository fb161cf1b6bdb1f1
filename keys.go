package suggest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Action represents the state transition triggered by a key press.
type Action int

// Key action constants define what a decoded chunk of terminal input does.
const (
	ActionNone Action = iota
	ActionInsert
	ActionBackspace
	ActionMoveUp
	ActionMoveDown
	ActionSubmit
	ActionAbort
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionBackspace:
		return "backspace"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionSubmit:
		return "submit"
	case ActionAbort:
		return "abort"
	default:
		return "none"
	}
}

// KeyMap holds the key binding configuration.
//
// Control codes are looked up by the first byte of a chunk. Escape sequences
// of the form ESC [ <digits> <letter> are looked up by their final letter.
type KeyMap struct {
	bindings  map[byte]Action
	sequences map[byte]Action
}

// NewDefaultKeyMap creates the default key bindings for the prompt.
//
// Default key bindings:
//   - Enter: Submit the selected suggestion
//   - Ctrl+C: Abort
//   - Backspace: Delete the last character
//   - Up/Down arrows: Move the selection cursor
//
// Example:
//
//	keyMap := suggest.NewDefaultKeyMap()
//	// Treat Ctrl+H as backspace too
//	keyMap.Bind('\b', suggest.ActionBackspace)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[byte]Action),
		sequences: make(map[byte]Action),
	}

	km.bindings[3] = ActionAbort       // Ctrl+C
	km.bindings[13] = ActionSubmit     // Enter
	km.bindings[127] = ActionBackspace // Backspace

	km.sequences['A'] = ActionMoveUp
	km.sequences['B'] = ActionMoveDown

	return km
}

// Bind adds or updates a binding for a control code.
func (km *KeyMap) Bind(code byte, action Action) {
	km.bindings[code] = action
}

// BindSequence adds or updates a binding for the final letter of an
// ESC [ <digits> <letter> sequence.
//
// Example:
//
//	keyMap := suggest.NewDefaultKeyMap()
//	// Right arrow (ESC [ C) accepts like Enter
//	keyMap.BindSequence('C', suggest.ActionSubmit)
func (km *KeyMap) BindSequence(final byte, action Action) {
	km.sequences[final] = action
}

// GetAction returns the action for a control code, or ActionNone if not bound
func (km *KeyMap) GetAction(code byte) Action {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[code]; exists {
		return action
	}
	return ActionNone
}

// GetSequenceAction returns the action for a sequence's final letter, or ActionNone if not bound
func (km *KeyMap) GetSequenceAction(final byte) Action {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[final]; exists {
		return action
	}
	return ActionNone
}

var csiPattern = regexp.MustCompile(`^\x1b\[[0-9]*([A-Za-z])`)

// decodeKey classifies one chunk read from the terminal. The returned text
// is only meaningful for ActionInsert.
func decodeKey(chunk []byte, km *KeyMap) (Action, string) {
	if len(chunk) == 0 {
		return ActionNone, ""
	}

	if chunk[0] == '\x1b' {
		m := csiPattern.FindSubmatch(chunk)
		if m == nil {
			return ActionNone, ""
		}
		return km.GetSequenceAction(m[1][0]), ""
	}

	if action := km.GetAction(chunk[0]); action != ActionNone {
		return action, ""
	}
	if chunk[0] < 0x20 {
		return ActionNone, ""
	}

	text := stripControl(string(chunk))
	if text == "" {
		return ActionNone, ""
	}
	return ActionInsert, text
}

// stripControl drops escape sequences and control characters from pasted
// text; the input stays on one line. Sequences typed together with text,
// such as "a\x1b[B", are removed whole rather than leaving "[B" behind.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// splitIncompleteRune splits b before a trailing multi-byte UTF-8 character
// that has not been fully read yet. Invalid bytes are not held back.
func splitIncompleteRune(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			return b, nil
		}
		return b[:i], b[i:]
	}
	return b, nil
}
