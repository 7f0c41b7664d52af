package ask

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the keystroke source used during masked entry.
//
// Masked reads need per-keystroke delivery instead of buffered lines, which
// on a real terminal means toggling raw mode. The interface isolates that
// global terminal state behind explicit SetRaw/Restore transitions so the
// reader can guarantee restoration on every exit path, and so tests can
// substitute a scripted terminal without touching real process state.
//
// Implementations:
//   - ttyTerminal: real terminal via go-tty, raw mode via golang.org/x/term
//   - streamTerminal: plain io.Reader (pipes, test buffers); raw mode is a no-op
//   - mockTerminal: deterministic scripted input for tests
type terminalInterface interface {
	SetRaw() error                // Enter raw mode for immediate key processing
	Restore() error               // Restore original terminal settings
	ReadRune() (rune, int, error) // Read a single Unicode character from input
	IsTerminal() bool             // Whether the source is an interactive terminal
	Close() error                 // Clean up resources and prevent fd leaks
}

// ttyTerminal implements terminalInterface for a real interactive terminal.
//
// go-tty provides cross-platform rune-at-a-time reads; golang.org/x/term
// manages the raw mode state. The original terminal state is captured on
// every SetRaw so restoration works no matter how many times the mode is
// toggled, and a closed flag guards against the double-close panic go-tty
// exhibits on Windows.
type ttyTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newTTYTerminal() (*ttyTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &ttyTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *ttyTerminal) SetRaw() error {
	// Capture the current state before entering raw mode so Restore always
	// has a fresh baseline.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *ttyTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *ttyTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *ttyTerminal) IsTerminal() bool {
	return true
}

func (t *ttyTerminal) Close() error {
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

// streamTerminal adapts a buffered reader into a keystroke source for
// masked reads on non-interactive input (pipes, files, test buffers).
// The session owns the buffered reader, so keystrokes typed ahead of a
// submit stay available to the next read. There is no terminal state to
// toggle, so SetRaw and Restore are no-ops.
type streamTerminal struct {
	reader *bufio.Reader
}

func newStreamTerminal(r *bufio.Reader) *streamTerminal {
	return &streamTerminal{reader: r}
}

func (t *streamTerminal) SetRaw() error  { return nil }
func (t *streamTerminal) Restore() error { return nil }

func (t *streamTerminal) ReadRune() (rune, int, error) {
	return t.reader.ReadRune()
}

func (t *streamTerminal) IsTerminal() bool { return false }
func (t *streamTerminal) Close() error     { return nil }

// isInteractive reports whether r is an *os.File attached to a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
