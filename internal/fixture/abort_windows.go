// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package fixture

import "os"

// abortExitCode matches the status the msvcrt abort() reports.
const abortExitCode = 3

// raiseAbort terminates the process abnormally. Windows has no
// SIGABRT delivery, so exit with the conventional abort status.
func raiseAbort() {
	os.Exit(abortExitCode)
}
