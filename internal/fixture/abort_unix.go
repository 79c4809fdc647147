// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package fixture

import (
	"os"
	"syscall"
)

// raiseAbort delivers SIGABRT to the current process. The runtime has
// no handler registered for it here, so this terminates the process
// abnormally and does not return.
func raiseAbort() {
	_ = syscall.Kill(os.Getpid(), syscall.SIGABRT)

	// The signal is delivered asynchronously; block until it lands.
	select {}
}
