package suggest

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations for testability.
//
// This interface provides a clean abstraction over platform-specific terminal
// operations, allowing the prompt to run against a real terminal (via go-tty)
// or a scripted mock in tests. It covers raw mode switching, size detection,
// input reading and resource cleanup.
//
// Input is delivered in chunks exactly as the terminal driver hands them
// over: one key press, one escape sequence, or a whole paste per Read. A
// chunk may end inside a multi-byte character when a paste is larger than
// the read buffer; callers join such tails with the next chunk.
//
// Implementations:
//   - realTerminal: Uses go-tty for actual terminal interaction
//   - mockTerminal: Replays pre-split chunks for testing
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate byte delivery
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	Read(p []byte) (int, error)           // Read the next chunk of raw input
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface on top of go-tty and x/term.
//
// go-tty opens the controlling terminal directly, so the prompt keeps working
// when stdin is a pipe (for example `ls | suggest`). Output is written
// separately to stdout through newOutput.
//
// Key properties:
//   - Double-close protection: The 'closed' flag prevents Windows panics on double Close()
//   - Safe size fallbacks: Returns 80x24 if terminal size detection fails
//   - Raw mode is entered and left on the tty input descriptor with golang.org/x/term
//   - Restore is safe to call without a preceding SetRaw, and more than once
//
// Raw mode disables output post-processing, which is why every line the
// renderer writes ends in "\r\n" rather than a bare newline.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	inputFd       int         // Descriptor raw mode is applied to
	originalState *term.State // Original terminal state to restore on exit
}

// newRealTerminal opens the controlling terminal.
func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty:     t,
		inputFd: int(t.Input().Fd()),
	}, nil
}

// newOutput returns stdout, wrapped for ANSI support on Windows.
func newOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state each time so Restore always returns to the
	// state the caller had before this prompt.
	if term.IsTerminal(t.inputFd) {
		state, err := term.MakeRaw(t.inputFd)
		if err != nil {
			return err
		}
		t.originalState = state
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.inputFd) {
		err := term.Restore(t.inputFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) Read(p []byte) (int, error) {
	return t.tty.Input().Read(p)
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
