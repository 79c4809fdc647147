// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package executor

import (
	"os"
	"syscall"
)

// terminatingSignal always reports false: Windows children end with
// an exit code, never a signal.
func terminatingSignal(*os.ProcessState) (syscall.Signal, bool) {
	return 0, false
}
