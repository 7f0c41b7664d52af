// Package ask provides a small console-input helper: it reads a line of
// text from a terminal, optionally masking it as it is typed, and runs the
// captured value through a chain of transformation functions to produce a
// final string or number.
//
// Key Features:
//
//   - Plain and masked (password-style) line reads with a configurable
//     placeholder character
//   - Backspace-aware placeholder echo: the display always shows exactly
//     one placeholder per typed character, never the character itself
//   - Nestable modifier pipelines for strings and numbers, applied
//     strictly in order
//   - Context support for timeouts and cancellation
//   - Pluggable input/output streams for non-interactive use and testing
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		session := ask.New()
//		session.Use(ask.TrimSpace(), ask.ToLower())
//
//		name, err := session.Ask("name: ").AsString()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		secret, err := session.Ask("password: ", ask.Hidden()).AsString()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("hello %s (secret is %d characters)\n", name, len(secret))
//	}
//
// Modifier Pipelines:
//
// A modifier is a function transforming the answer. Modifiers registered
// with Session.Use form the session's default pipeline and run on every
// answer; additional modifiers may be passed to the finalizers and run
// after the defaults. Chains nest arbitrarily and are flattened depth-first,
// left-to-right before application:
//
//	session.Use(ask.Chain{ask.TrimSpace(), ask.Chain{ask.ToLower()}})
//
//	at := ask.ModifierFunc(func(s string) (string, error) {
//		if strings.HasPrefix(s, "@") {
//			return s, nil
//		}
//		return "@" + s, nil
//	})
//	handle, err := session.Ask("handle: ").AsString(at)
//
// Numbers:
//
// AsNumber coerces the answer to a float64 before folding numeric
// modifiers over it. Coercion is deliberately lenient: a non-numeric
// answer yields NaN instead of an error, and NaN flows through the
// pipeline unless a modifier checks for it.
//
//	age, err := session.Ask("age: ").AsNumber(ask.Clamp(0, 130))
//
// Masked Entry:
//
// With Hidden or HiddenWith, the input is switched to per-keystroke
// delivery and, on an interactive terminal, into raw mode so nothing is
// locally echoed. Enter submits the hidden line, Backspace (or Ctrl+H)
// deletes the last character, Ctrl+D on an empty line returns ErrEOF, and
// Ctrl+C returns ErrInterrupted rather than leaving the read pending.
//
// Error Handling:
//
//   - ask.ErrInterrupted: user pressed Ctrl+C during masked entry
//   - ask.ErrEOF: input ended before a line was delivered
//   - *ask.ModifierError: a modifier failed; the rest of the pipeline is
//     aborted and the cause is available via errors.Unwrap
//
// Thread Safety:
//
// Session instances are not thread-safe, and raw mode is global terminal
// state: at most one masked read may be active against a given terminal.
// Serialize Ask calls in the caller.
package ask
