// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scenario loads YAML-described process runs and checks the
// observed behaviour against expectations. A scenario names a program
// to run with arguments, environment, stdin and an optional timeout,
// and expects some combination of exit code, terminating signal,
// timeout classification and exact stream contents.
package scenario
