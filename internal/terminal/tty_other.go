//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"fmt"
	"os"
)

// Open is not supported on this platform; callers fall back to Passthrough.
func Open(in, out *os.File) (*TTY, error) {
	return nil, fmt.Errorf("raw terminal mode is not supported on this platform: %w", ErrNotTerminal)
}
