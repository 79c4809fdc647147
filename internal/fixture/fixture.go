// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// sleepDuration is how long the timeout verb blocks before exiting.
// A variable so tests can shorten the delay.
var sleepDuration = 3 * time.Second

// wantArgc is the argv length required by verbs that take an argument.
const wantArgc = 3

// faultAddr is dereferenced by the segfault verb. Kept as a package
// variable so the load cannot be optimised away.
var faultAddr *int

var faultSink int

// Main dispatches on os.Args and terminates the process. It does not
// return unless the dispatched verb does.
func Main() {
	os.Exit(Dispatch(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// Dispatch runs the verb selected by argv[1] against the supplied
// streams and returns the process exit code. The crash verbs
// (segfault, abort) and precondition violations do not return.
func Dispatch(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) <= 1 {
		return 0
	}

	switch argv[1] {
	case "segfault":
		// Fatal invalid-memory fault. The runtime turns this into an
		// unrecoverable panic and the process dies with a nonzero
		// status.
		faultSink = *faultAddr

	case "abort":
		raiseAbort()

	case "timeout":
		time.Sleep(sleepDuration)

	case "usersig":
		// Reserved verb. Deliberately a no-op: callers probe it to see
		// a process that accepts the verb but does nothing.

	case "rc":
		// atoi semantics: an unparseable string exits 0.
		v, err := strconv.Atoi(argArg(argv))
		if err != nil {
			v = 0
		}

		return v

	case "stderr":
		fmt.Fprintf(stderr, "%s\n", argArg(argv))

	case "stdouterr":
		msg := argArg(argv)
		fmt.Fprintf(stdout, "OUT: %s\n", msg)
		fmt.Fprintf(stderr, "ERR: %s\n", msg)

	case "read_line_from_stdin":
		// One line including its newline, or whatever is there if the
		// input ends first.
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			panic(fmt.Sprintf("read stdin: %v", err))
		}

		io.WriteString(stdout, line) //nolint:errcheck
	}

	return 0
}

// argArg returns argv[2] for verbs that require it. Anything other
// than exactly three argv entries is a contract violation by the
// caller and aborts the process.
func argArg(argv []string) string {
	if len(argv) != wantArgc {
		panic(fmt.Sprintf("%s: want exactly %d args, got %d", argv[1], wantArgc, len(argv)))
	}

	return argv[2]
}
