// Package styles colours the messages tsh prints around command output.
package styles

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders text for one output stream. Colours are dropped when the
// stream is not a colour terminal.
type Styles struct {
	out *termenv.Output
}

// New creates Styles for w.
func New(w io.Writer) *Styles {
	return &Styles{out: termenv.NewOutput(w)}
}

func (s *Styles) Error(text string) string {
	return s.out.String(text).
		Foreground(s.out.Color("9")).
		String()
}

func (s *Styles) Hint(text string) string {
	return s.out.String(text).
		Foreground(s.out.Color("8")).
		String()
}

func (s *Styles) Command(text string) string {
	return s.out.String(text).
		Foreground(s.out.Color("12")).
		Bold().
		String()
}

func (s *Styles) Heading(text string) string {
	return s.out.String(text).
		Bold().
		String()
}
