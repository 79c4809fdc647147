// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// Signals of interest when classifying crashed children.
const (
	// SignalAbort is raised by abort(3) style terminations.
	SignalAbort = syscall.Signal(6)
	// SignalSegfault is raised by invalid memory accesses.
	SignalSegfault = syscall.Signal(11)
)

type statusKind int

const (
	kindOk statusKind = iota
	kindFailure
	kindSignal
	kindTimeout
)

// ExitStatus describes how a child process ended: a normal zero exit,
// a nonzero exit code, termination by signal, or killed by the
// executor after exceeding its timeout.
//
// Negative exit codes wrap around 256 at the process boundary, so a
// child calling exit(-10) is observed as Failure(246).
type ExitStatus struct {
	kind    statusKind
	code    int
	signal  syscall.Signal
	timeout time.Duration
}

// StatusOk is a normal, successful exit.
func StatusOk() ExitStatus {
	return ExitStatus{kind: kindOk}
}

// StatusFailure is a completed exit with a nonzero code.
func StatusFailure(code int) ExitStatus {
	return ExitStatus{kind: kindFailure, code: code}
}

// StatusSignal is a termination by the given signal.
func StatusSignal(sig syscall.Signal) ExitStatus {
	return ExitStatus{kind: kindSignal, signal: sig}
}

// StatusTimeout records that the executor killed the child after d.
func StatusTimeout(d time.Duration) ExitStatus {
	return ExitStatus{kind: kindTimeout, timeout: d}
}

// IsOk reports a successful zero exit.
func (s ExitStatus) IsOk() bool {
	return s.kind == kindOk
}

// Completed reports whether the child ran to completion and exited on
// its own, successfully or not. Signalled and timed-out children did
// not complete.
func (s ExitStatus) Completed() bool {
	return s.kind == kindOk || s.kind == kindFailure
}

// ExitCode returns the exit code where one is meaningful: 0 for a
// successful exit, the child's code for a failure, and the signal
// number for a signalled child. A timed-out child has no exit code.
func (s ExitStatus) ExitCode() (int, bool) {
	switch s.kind {
	case kindOk:
		return 0, true
	case kindFailure:
		return s.code, true
	case kindSignal:
		return int(s.signal), true
	default:
		return 0, false
	}
}

// Signal returns the terminating signal, if the child was signalled.
func (s ExitStatus) Signal() (syscall.Signal, bool) {
	if s.kind != kindSignal {
		return 0, false
	}

	return s.signal, true
}

// TimedOut reports whether the executor killed the child on timeout.
func (s ExitStatus) TimedOut() bool {
	return s.kind == kindTimeout
}

// String implements fmt.Stringer.
func (s ExitStatus) String() string {
	switch s.kind {
	case kindOk:
		return "ok"
	case kindFailure:
		return fmt.Sprintf("exit code %d", s.code)
	case kindSignal:
		return fmt.Sprintf("signal %d (%s)", int(s.signal), s.signal.String())
	default:
		return fmt.Sprintf("timed out after %s", s.timeout)
	}
}

// statusFromState classifies a reaped process state.
func statusFromState(state *os.ProcessState) ExitStatus {
	if state.Success() {
		return StatusOk()
	}

	if sig, ok := terminatingSignal(state); ok {
		return StatusSignal(sig)
	}

	return StatusFailure(state.ExitCode())
}
