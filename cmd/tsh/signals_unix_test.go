//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package main

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinylittleshell/tsh/internal/journal"
	"github.com/atinylittleshell/tsh/internal/terminal"
)

func TestWatchSignalsRunsCleanupsBeforeExit(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = os.Exit })

	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)

	restored := false
	tty := terminal.Passthrough(nil, nil)
	var order []string
	stop := watchSignals(zap.NewNop(),
		func() error {
			restored = true
			order = append(order, "restore")
			return tty.Restore()
		},
		func() error {
			order = append(order, "journal")
			return j.Close()
		},
		func() error {
			order = append(order, "failing")
			return errors.New("already closed")
		},
	)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	select {
	case code := <-codes:
		assert.Equal(t, 128+int(syscall.SIGHUP), code)
	case <-time.After(5 * time.Second):
		t.Fatal("signal was not handled")
	}

	assert.True(t, restored)
	assert.Equal(t, []string{"restore", "journal", "failing"}, order)

	// The journal is closed, so queries fail.
	_, err = j.RecentEntries(1)
	assert.Error(t, err)
}
