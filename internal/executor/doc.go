// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package executor runs child processes from declarative Command
// values and classifies how they ended.
//
// A Command is built fluently and then handed to an Executor. The
// OSExecutor spawns a real child with a cleared environment, always
// captures both output streams (bounded), feeds stdin from a string,
// file or reader, enforces the command's timeout and forwards signals.
// The resulting Output carries both streams and a tagged ExitStatus:
// ok, nonzero exit, terminated by signal, or killed on timeout.
//
// Code that runs processes can depend on the Executor interface and be
// tested against the MockExecutor instead of the operating system.
package executor
