package suggest

import "github.com/rivo/uniseg"

// outcome tells the lifecycle controller what to do after a transition.
type outcome int

const (
	outcomeIgnore outcome = iota // nothing changed, nothing to draw
	outcomeRender                // repaint the active frame
	outcomeBell                  // invalid edit, ring the bell instead of repainting
	outcomeSubmit                // finished with a selection
	outcomeAbort                 // finished by the user cancelling
)

// state is the authoritative record of one prompt invocation.
// Every mutation goes through its methods; once finished is set none of
// them changes input, suggestions or cursor again.
type state struct {
	suggest     func(string) []string
	input       string
	suggestions []string
	cursor      int
	finished    bool
	aborted     bool
}

func newState(suggest func(string) []string) *state {
	if suggest == nil {
		suggest = NoSuggestions
	}
	return &state{suggest: suggest}
}

// status reports the lifecycle status for the symbol function.
func (s *state) status() Status {
	switch {
	case s.aborted:
		return StatusAborted
	case s.finished:
		return StatusDone
	default:
		return StatusPending
	}
}

// apply performs the transition for a decoded action.
func (s *state) apply(action Action, text string) outcome {
	if s.finished {
		return outcomeIgnore
	}

	switch action {
	case ActionInsert:
		s.insert(text)
		return outcomeRender
	case ActionBackspace:
		if !s.backspace() {
			return outcomeBell
		}
		return outcomeRender
	case ActionMoveUp:
		s.moveUp()
		return outcomeRender
	case ActionMoveDown:
		s.moveDown()
		return outcomeRender
	case ActionSubmit:
		s.submit()
		return outcomeSubmit
	case ActionAbort:
		s.abort()
		return outcomeAbort
	default:
		return outcomeIgnore
	}
}

// refresh recomputes the suggestions for the current input.
func (s *state) refresh() {
	s.suggestions = s.suggest(s.input)
	if s.cursor >= len(s.suggestions) {
		s.cursor = max(len(s.suggestions)-1, 0)
	}
}

func (s *state) insert(text string) {
	if s.finished {
		return
	}
	s.input += text
	s.refresh()
}

// backspace removes the last grapheme cluster. It reports false, and leaves
// everything untouched, when the input is already empty.
func (s *state) backspace() bool {
	if s.finished || s.input == "" {
		return false
	}
	s.input = trimLastGrapheme(s.input)
	s.refresh()
	return true
}

func (s *state) moveUp() {
	if s.finished || len(s.suggestions) == 0 {
		return
	}
	if s.cursor == 0 {
		s.cursor = len(s.suggestions) - 1
	} else {
		s.cursor--
	}
}

func (s *state) moveDown() {
	if s.finished || len(s.suggestions) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.suggestions)
}

func (s *state) submit() {
	if s.finished {
		return
	}
	s.finished = true
	s.aborted = false
}

func (s *state) abort() {
	if s.finished {
		return
	}
	s.finished = true
	s.aborted = true
}

// selection is the submitted value: the suggestion under the cursor, or
// the empty string when there is none.
func (s *state) selection() string {
	if s.cursor < 0 || s.cursor >= len(s.suggestions) {
		return ""
	}
	return s.suggestions[s.cursor]
}

func trimLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		last = start
	}
	return s[:last]
}
