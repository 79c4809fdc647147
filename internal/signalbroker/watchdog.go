// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/proctor/internal/ctxlog"
)

// Watch monitors the signal channel and cancels the context on the
// second signal of a given type. The first signal of each type is
// tolerated so that a supervised child process gets a chance to react
// to it before the whole run is torn down.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "second signal of type, cancelling", "signal", sig.String())
			signal.Stop(sigCh)
			close(sigCh)
			cancel()

			return
		}

		seen[sig] = struct{}{}

		ctxlog.Info(ctx, "watchdog", "detail", "first signal of type, waiting for child", "signal", sig.String())
	}
}
