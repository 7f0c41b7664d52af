package ask

import (
	"fmt"
	"io"
)

// maskRenderer handles the visual side of masked entry.
//
// The true input is never written to the output; the renderer shows one
// placeholder per typed character and keeps the invariant that the number
// of visible placeholders always equals the length of the hidden line.
// It tracks its own rendered count so the masked reader (and tests) can
// verify that invariant without inspecting terminal state.
type maskRenderer struct {
	output      io.Writer // Target writer, nil when no output is configured
	placeholder string    // Substitute string rendered per typed character
	rendered    int       // Placeholders currently visible
}

func newMaskRenderer(output io.Writer, placeholder string) *maskRenderer {
	return &maskRenderer{
		output:      output,
		placeholder: placeholder,
	}
}

// prompt writes the question ahead of the masked input area.
func (r *maskRenderer) prompt(question string) error {
	if r.output == nil || question == "" {
		return nil
	}
	if _, err := fmt.Fprint(r.output, question); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// echo renders one placeholder for a freshly typed character.
func (r *maskRenderer) echo() error {
	r.rendered++
	if r.output == nil {
		return nil
	}
	if _, err := fmt.Fprint(r.output, r.placeholder); err != nil {
		return fmt.Errorf("failed to echo placeholder: %w", err)
	}
	return nil
}

// erase removes the most recently rendered placeholder, stepping the cursor
// back over each placeholder rune and blanking it.
func (r *maskRenderer) erase() error {
	if r.rendered == 0 {
		return nil
	}
	r.rendered--
	if r.output == nil {
		return nil
	}
	for range r.placeholder {
		if _, err := fmt.Fprint(r.output, "\b \b"); err != nil {
			return fmt.Errorf("failed to erase placeholder: %w", err)
		}
	}
	return nil
}

// newline terminates the masked input area after submit or cancel.
func (r *maskRenderer) newline() error {
	if r.output == nil {
		return nil
	}
	if _, err := fmt.Fprint(r.output, "\r\n"); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	return nil
}
