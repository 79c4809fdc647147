// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import "os/exec"

// FindProgram resolves a program name against the system PATH and
// reports whether it was found.
func FindProgram(program string) (string, bool) {
	path, err := exec.LookPath(program)
	if err != nil {
		return "", false
	}

	return path, true
}
