package pgnpresenter

import (
	"fmt"
	"io"
	"strings"
)

// Presenter delivers formatted text to the terminal without coupling to the session logic.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Line writes message followed by a newline. Blank messages are skipped.
func (p *Presenter) Line(message string) error {
	if p == nil || p.out == nil || message == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.out, message)
	return err
}

// Lines writes each entry on its own line.
func (p *Presenter) Lines(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	return p.Line(strings.Join(lines, "\n"))
}

// Prompt writes message without a trailing newline.
func (p *Presenter) Prompt(message string) error {
	if p == nil || p.out == nil {
		return nil
	}
	_, err := io.WriteString(p.out, message)
	return err
}
