package ask

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readerState is the lifecycle of a masked entry session.
type readerState int

const (
	// stateEditing accepts keystrokes and mutates the hidden line.
	stateEditing readerState = iota
	// stateClosed is terminal: the listener is detached and the line is
	// immutable.
	stateClosed
)

// keyAction classifies a single keystroke during masked entry.
type keyAction int

const (
	actionInsert keyAction = iota
	actionSubmit
	actionCancel
	actionBackspace
	actionEOF
	actionEscape
	actionIgnore
)

// classifyKey maps a raw keystroke to its editing action. The bindings are
// fixed: Enter submits, Ctrl+C cancels, Backspace/Ctrl+H delete backwards,
// Ctrl+D signals EOF, ESC opens an escape sequence, printable runes insert,
// everything else is ignored.
func classifyKey(r rune) keyAction {
	switch r {
	case '\r', '\n':
		return actionSubmit
	case '\x03': // Ctrl+C
		return actionCancel
	case '\x7f', '\b': // Backspace, Ctrl+H
		return actionBackspace
	case '\x04': // Ctrl+D
		return actionEOF
	case '\x1b': // ESC
		return actionEscape
	}
	if r >= 32 && r < 127 || r > 127 { // Printable characters
		return actionInsert
	}
	return actionIgnore
}

// discardEscapeSequence consumes the remainder of an escape sequence after
// ESC has been read, so arrow and function keys do not leak their bytes
// into the hidden line. CSI ("[") and SS3 ("O") sequences run until a
// terminator; anything else is an Alt-modified key carrying exactly one
// following rune.
func discardEscapeSequence(t terminalInterface) {
	r, _, err := t.ReadRune()
	if err != nil {
		return
	}
	if r != '[' && r != 'O' {
		return
	}
	for i := 0; i < 10; i++ { // Limit to prevent infinite loop
		r, _, err := t.ReadRune()
		if err != nil {
			return
		}
		if r == '~' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return
		}
	}
}

// lineReader performs one read against the session's streams. A fresh
// reader is created per Ask call and released when the line is delivered;
// the buffered view of the input belongs to the session so that bytes read
// ahead of a newline carry over into the next call.
type lineReader struct {
	input    io.Reader     // raw stream, for terminal detection
	buffered *bufio.Reader // session-owned buffered view of input
	output   io.Writer
	terminal terminalInterface // nil unless the session injected one
}

func newLineReader(s *Session) *lineReader {
	return &lineReader{
		input:    s.input,
		buffered: s.buffered,
		output:   s.output,
		terminal: s.terminal,
	}
}

// readPlain issues a standard buffered line read: print the question, then
// deliver the next line from the input with its trailing newline stripped.
// EOF with a partial line delivers that line; EOF with nothing read returns
// ErrEOF.
func (l *lineReader) readPlain(ctx context.Context, question string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if l.output != nil && question != "" {
		if _, err := fmt.Fprint(l.output, question); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	line, err := l.buffered.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrEOF
			}
			// A final unterminated line still counts as an answer.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readMasked captures a line keystroke by keystroke, echoing a placeholder
// per typed character instead of the character itself.
//
// The input is switched to per-keystroke delivery; when it is an interactive
// terminal the terminal is additionally put into raw mode so keystrokes are
// neither locally echoed nor line-buffered. Raw mode is a scoped
// acquisition: it is restored on submit, cancel, EOF, and error alike.
func (l *lineReader) readMasked(ctx context.Context, question, placeholder string) (string, error) {
	terminal, owned, err := l.acquireTerminal()
	if err != nil {
		return "", fmt.Errorf("failed to open terminal: %w", err)
	}
	if owned {
		defer terminal.Close()
	}

	if terminal.IsTerminal() {
		if err := terminal.SetRaw(); err != nil {
			return "", fmt.Errorf("failed to enter raw mode: %w", err)
		}
	}
	restored := false
	restore := func() error {
		if restored || !terminal.IsTerminal() {
			return nil
		}
		restored = true
		return terminal.Restore()
	}
	defer func() {
		// Best-effort restore on early error returns; successful paths
		// restore explicitly before writing the trailing newline.
		if err := restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	renderer := newMaskRenderer(l.output, placeholder)
	if err := renderer.prompt(question); err != nil {
		return "", err
	}

	line := make([]rune, 0, 16)
	state := stateEditing

	for state == stateEditing {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, _, err := terminal.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input exhausted before Enter: deliver what was typed,
				// or ErrEOF when nothing was.
				state = stateClosed
				if err := restore(); err != nil {
					return "", fmt.Errorf("failed to exit raw mode: %w", err)
				}
				if len(line) == 0 {
					return "", ErrEOF
				}
				return string(line), nil
			}
			return "", fmt.Errorf("failed to read keystroke: %w", err)
		}

		switch classifyKey(r) {
		case actionSubmit:
			state = stateClosed
			if err := restore(); err != nil {
				return "", fmt.Errorf("failed to exit raw mode: %w", err)
			}
			if err := renderer.newline(); err != nil {
				return "", err
			}
			return string(line), nil

		case actionCancel:
			// Cancellation rejects the read instead of leaving it pending.
			state = stateClosed
			if err := restore(); err != nil {
				return "", fmt.Errorf("failed to exit raw mode: %w", err)
			}
			if err := renderer.newline(); err != nil {
				return "", err
			}
			return "", ErrInterrupted

		case actionEOF:
			if len(line) == 0 {
				state = stateClosed
				if err := restore(); err != nil {
					return "", fmt.Errorf("failed to exit raw mode: %w", err)
				}
				if err := renderer.newline(); err != nil {
					return "", err
				}
				return "", ErrEOF
			}

		case actionBackspace:
			// Backspace on an empty line is a no-op.
			if len(line) > 0 {
				line = line[:len(line)-1]
				if err := renderer.erase(); err != nil {
					return "", err
				}
			}

		case actionInsert:
			line = append(line, r)
			if err := renderer.echo(); err != nil {
				return "", err
			}

		case actionEscape:
			// Swallow the whole sequence so none of its bytes insert.
			discardEscapeSequence(terminal)

		case actionIgnore:
			// Unrecognized control keystrokes are dropped.
		}
	}

	return string(line), nil
}

// acquireTerminal picks the keystroke source for a masked read: an injected
// terminal (session-owned, not closed here), a real TTY when the input is an
// interactive terminal, or a stream adapter over the configured input
// otherwise. The owned result tells the caller whether it must close the
// terminal.
func (l *lineReader) acquireTerminal() (terminalInterface, bool, error) {
	if l.terminal != nil {
		return l.terminal, false, nil
	}
	if isInteractive(l.input) {
		t, err := newTTYTerminal()
		if err != nil {
			return nil, false, err
		}
		return t, true, nil
	}
	return newStreamTerminal(l.buffered), true, nil
}
