// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the process-lifecycle test fixture binary.
// It takes a single verb argument and deterministically crashes,
// aborts, sleeps, exits with a chosen code, or writes to its standard
// streams. See the fixture package for the verb table.
package main

import "github.com/matt-FFFFFF/proctor/internal/fixture"

func main() {
	fixture.Main()
}
