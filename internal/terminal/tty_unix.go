//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Open saves the terminal attributes of in and disables canonical input and
// echo. Output processing is left alone, so "\n" still starts a new line.
func Open(in, out *os.File) (*TTY, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal attributes: %w", err)
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	return &TTY{
		in:  in,
		out: out,
		restore: func() error {
			if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, saved); err != nil {
				return fmt.Errorf("failed to restore terminal: %w", err)
			}
			return nil
		},
	}, nil
}
