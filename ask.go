package ask

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
)

// Common errors
var (
	// ErrEOF is returned when the input ends before a line is delivered,
	// or when the user presses Ctrl+D on an empty masked line.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C during
	// masked entry.
	ErrInterrupted = errors.New("interrupted")
)

// defaultPlaceholder is the substitute character for masked entry when the
// caller does not supply one.
const defaultPlaceholder = "*"

// Session holds the stream configuration and the persistent default
// modifier pipeline shared by every Ask call.
//
// A Session is created once and reused; each Ask call wraps the session's
// streams in a fresh line reader. Default modifiers registered with Use
// persist across calls and are only ever appended to.
//
// Session instances are not safe for concurrent use: raw-mode switching is
// global process terminal state, so at most one masked read may be active
// against a given terminal. Serialize Ask calls in the caller.
type Session struct {
	input     io.Reader
	buffered  *bufio.Reader // persistent buffered view of input
	output    io.Writer
	modifiers []ModifierFunc    // default pipeline, flattened at Use time
	terminal  terminalInterface // injected keystroke source, nil for real use
}

// Option configures a Session.
type Option func(*Session)

// WithInput sets the input stream to read answers from. Defaults to
// os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		s.input = r
	}
}

// WithOutput sets the output stream for prompts and placeholder echo.
// Defaults to os.Stdout. Set to nil to suppress all output.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.output = w
	}
}

// New creates a Session with the given options.
//
// Example:
//
//	session := ask.New()
//	session.Use(ask.TrimSpace(), ask.ToLower())
//
//	name, err := session.Ask("name: ").AsString()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	secret, err := session.Ask("password: ", ask.Hidden()).AsString()
//	if err != nil {
//		log.Fatal(err)
//	}
func New(options ...Option) *Session {
	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI escape sequence support
		output = colorable.NewColorableStdout()
	}

	s := &Session{
		input:  os.Stdin,
		output: output,
	}
	for _, option := range options {
		option(s)
	}
	// One buffered view for the session's whole lifetime: read-ahead past
	// a newline must survive into the next Ask call.
	s.buffered = bufio.NewReader(s.input)
	return s
}

// Use appends modifiers to the session's default pipeline. Nested chains
// are flattened depth-first, left-to-right before appending. The default
// pipeline runs on every answer unless the Ask call opts out with
// WithoutModifiers.
func (s *Session) Use(modifiers ...Modifier) {
	s.modifiers = append(s.modifiers, flattenModifiers(modifiers)...)
}

// askConfig holds the per-call options of a single Ask invocation.
type askConfig struct {
	useModifiers bool
	hidden       bool
	placeholder  string
}

// AskOption configures a single Ask call.
type AskOption func(*askConfig)

// WithoutModifiers skips the session's default modifier pipeline for this
// call. Call-supplied modifiers on AsString/AsNumber still run.
func WithoutModifiers() AskOption {
	return func(c *askConfig) {
		c.useModifiers = false
	}
}

// Hidden enables masked entry for this call: typed characters are not
// echoed, a "*" is shown per character instead.
func Hidden() AskOption {
	return func(c *askConfig) {
		c.hidden = true
	}
}

// HiddenWith enables masked entry with a custom placeholder string rendered
// per typed character. An empty placeholder falls back to "*".
func HiddenWith(placeholder string) AskOption {
	return func(c *askConfig) {
		c.hidden = true
		c.placeholder = placeholder
	}
}

// Answer is a pending question. It is resolved by one of the finalizers,
// which perform the read and run the modifier pipelines.
type Answer struct {
	session  *Session
	question string
	config   askConfig
}

// Ask prepares a question against the session's streams. The read happens
// when a finalizer (AsString, AsNumber, or a context variant) is called.
func (s *Session) Ask(question string, options ...AskOption) *Answer {
	config := askConfig{
		useModifiers: true,
		placeholder:  defaultPlaceholder,
	}
	for _, option := range options {
		option(&config)
	}
	if config.placeholder == "" {
		config.placeholder = defaultPlaceholder
	}
	return &Answer{
		session:  s,
		question: question,
		config:   config,
	}
}

// AsString reads the answer and returns it as a string after running the
// session's default pipeline (unless disabled) and then the call-supplied
// modifiers.
func (a *Answer) AsString(modifiers ...Modifier) (string, error) {
	return a.AsStringContext(context.Background(), modifiers...)
}

// AsStringContext is AsString with context support: the read is abandoned
// with the context's error once the context is done.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	answer, err := session.Ask("token: ", ask.Hidden()).AsStringContext(ctx)
func (a *Answer) AsStringContext(ctx context.Context, modifiers ...Modifier) (string, error) {
	raw, err := a.read(ctx)
	if err != nil {
		return "", err
	}
	result, err := a.applyDefaults(raw)
	if err != nil {
		return "", err
	}
	return applyModifiers(result, flattenModifiers(modifiers))
}

// AsNumber reads the answer, runs the default string pipeline (unless
// disabled), coerces the result to a number, and folds the call-supplied
// numeric modifiers over it.
//
// Coercion is lenient: a non-numeric answer yields NaN rather than an
// error, and NaN flows through the numeric pipeline unless a modifier
// checks for it with math.IsNaN.
func (a *Answer) AsNumber(modifiers ...NumberModifier) (float64, error) {
	return a.AsNumberContext(context.Background(), modifiers...)
}

// AsNumberContext is AsNumber with context support.
func (a *Answer) AsNumberContext(ctx context.Context, modifiers ...NumberModifier) (float64, error) {
	raw, err := a.read(ctx)
	if err != nil {
		return 0, err
	}
	// Default modifiers run on the string stage, before coercion.
	result, err := a.applyDefaults(raw)
	if err != nil {
		return 0, err
	}
	return applyNumberModifiers(coerceNumber(result), flattenNumberModifiers(modifiers))
}

func (a *Answer) applyDefaults(raw string) (string, error) {
	if !a.config.useModifiers {
		return raw, nil
	}
	return applyModifiers(raw, a.session.modifiers)
}

// read performs the line read with a reader freshly bound to the session's
// streams.
func (a *Answer) read(ctx context.Context) (string, error) {
	reader := newLineReader(a.session)
	if a.config.hidden {
		return reader.readMasked(ctx, a.question, a.config.placeholder)
	}
	return reader.readPlain(ctx, a.question)
}
