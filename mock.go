package suggest

import "io"

// mockTerminal implements terminalInterface for testing.
//
// Each Read returns exactly one pre-configured chunk, the way a terminal in
// raw mode delivers one key press or escape sequence per read. Once the
// chunks are used up Read returns io.EOF.
type mockTerminal struct {
	chunks       []string // Pre-configured input chunks
	reads        int      // Number of chunks handed out so far
	rawMode      bool     // Track raw mode state for test verification
	terminalSize [2]int   // Fixed terminal dimensions [width, height]
	closed       bool
}

func newMockTerminal(chunks ...string) *mockTerminal {
	return &mockTerminal{
		chunks:       chunks,
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) Read(p []byte) (int, error) {
	if m.reads >= len(m.chunks) {
		return 0, io.EOF
	}
	n := copy(p, m.chunks[m.reads])
	m.reads++
	return n, nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
