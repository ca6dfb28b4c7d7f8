// Package terminal puts the controlling terminal into the no-echo,
// no-line-buffering mode the line editor needs and restores the previous
// mode when the session ends.
package terminal

import (
	"errors"
	"io"
	"sync"
)

// ErrNotTerminal is returned by Open when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// TTY is a terminal whose input mode has been changed. Restore puts the
// saved mode back; it is safe to call more than once and from another
// goroutine (a signal watcher, for instance).
type TTY struct {
	in  io.Reader
	out io.Writer

	restoreOnce sync.Once
	restoreErr  error
	restore     func() error
}

func (t *TTY) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Restore reinstates the mode saved by Open.
func (t *TTY) Restore() error {
	t.restoreOnce.Do(func() {
		if t.restore != nil {
			t.restoreErr = t.restore()
		}
	})
	return t.restoreErr
}

// Passthrough wraps plain streams without touching any terminal mode. It is
// used when input is piped in, and in tests.
func Passthrough(in io.Reader, out io.Writer) *TTY {
	return &TTY{in: in, out: out}
}
