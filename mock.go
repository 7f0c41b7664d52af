package ask

import "io"

// mockTerminal implements terminalInterface for testing.
//
// It feeds a pre-configured keystroke sequence to the masked reader and
// tracks raw mode transitions so tests can verify that the terminal state
// is acquired and restored correctly. No real terminal interaction takes
// place, which keeps tests deterministic and safe for headless CI.
type mockTerminal struct {
	input      []rune // Pre-configured keystroke sequence
	inputPos   int    // Current position in the sequence
	rawMode    bool   // Track raw mode state for test verification
	rawEntered int    // Number of SetRaw calls
	restored   int    // Number of Restore calls
	closedN    int    // Number of Close calls
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{input: []rune(input)}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawEntered++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restored++
	return nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) IsTerminal() bool { return true }

func (m *mockTerminal) Close() error {
	m.closedN++
	return nil
}
