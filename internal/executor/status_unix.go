// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package executor

import (
	"os"
	"syscall"
)

// terminatingSignal reports the signal that killed the child, if any.
func terminatingSignal(state *os.ProcessState) (syscall.Signal, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}

	return ws.Signal(), true
}
