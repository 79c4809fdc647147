// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/proctor/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

// watch runs Watch in the background and returns a wait function.
func watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) func() {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	return wg.Wait
}

func cancelled(ctx context.Context) bool {
	// Give the watchdog a moment to act.
	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func TestWatch_FirstSignalDoesNotCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 1)
	wait := watch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt

	assert.False(t, cancelled(ctx), "context should not be cancelled after first signal")

	close(sigCh)
	wait()
}

func TestWatch_SecondSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wait := watch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	assert.True(t, cancelled(ctx), "context should be cancelled after second signal")

	_, open := <-sigCh
	assert.False(t, open, "signal channel should be closed after second signal")

	wait()
}

func TestWatch_DifferentSignalsDoNotCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wait := watch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Kill

	assert.False(t, cancelled(ctx), "context should not be cancelled for different signals")

	close(sigCh)
	wait()
}
