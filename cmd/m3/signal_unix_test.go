//go:build unix

package main

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOnInterruptStopReleasesWatcher(t *testing.T) {
	restored := false
	stop := onInterrupt(func() { restored = true }, func(int) { t.Fatal("exit called without a signal") })

	finished := make(chan struct{})
	go func() {
		stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("watcher still running after stop")
	}
	require.False(t, restored)
}

func TestOnInterruptRestoresCursor(t *testing.T) {
	restored := make(chan struct{})
	codes := make(chan int, 1)
	stop := onInterrupt(func() { close(restored) }, func(code int) { codes <- code })
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-restored:
	case <-time.After(time.Second):
		t.Fatal("cursor not restored on interrupt")
	}
	require.Equal(t, 1, <-codes)
}
