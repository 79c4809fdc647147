// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fixture implements the verb dispatcher behind the fixture
// binary, a deliberately tiny process used to exercise
// process-lifecycle handling: crash detection, exit codes, timeouts
// and stream capture.
//
// The binary is invoked as `fixture [verb] [arg]`. The first argument
// selects exactly one behaviour; no verb, or an unrecognised verb,
// exits 0 with no side effect. Verbs that require a message or exit
// code argument demand exactly three argv entries and panic on
// violation, mirroring an assert-style abort: misuse by the calling
// harness is not a recoverable condition.
package fixture
