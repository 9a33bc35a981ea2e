// Package output provides mode-aware rendering for command output.
//
// Commands render through a Renderer so that the same invocation produces
// plain text on a terminal, markdown when piped, and JSON when asked.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto picks text on a TTY and markdown otherwise.
	ModeAuto Mode = "auto"
	// ModeText renders styled plain text.
	ModeText Mode = "text"
	// ModeMarkdown renders markdown suitable for piping into docs.
	ModeMarkdown Mode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out  io.Writer
	err  io.Writer
	mode Mode
}

// NewRenderer creates a renderer for the given writers and mode.
// An empty or unknown mode falls back to auto.
func NewRenderer(out, errw io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, err: errw, mode: mode}
}

// EffectiveMode resolves ModeAuto against the output writer: a terminal
// gets text, anything else gets markdown.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.err
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}
