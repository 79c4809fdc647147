// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Command describes a child process to run: the program, its
// arguments, environment, working directory, where its standard input
// comes from, where captured output should additionally be written,
// and an optional timeout.
//
// A Command is a passive set of instructions; an Executor knows how to
// carry them out. The same Command may be run any number of times, on
// any executor.
type Command struct {
	Program    string            // The program to run (path or name resolvable by the OS).
	Args       []string          // Arguments, not including the program itself.
	Environ    map[string]string // Environment for the child. The child never inherits the parent's.
	Cwd        string            // Working directory, empty means the parent's.
	Stdin      StdinSource       // Standard input source, nil means no input.
	StdoutPath string            // If set, captured stdout is also written here.
	StderrPath string            // If set, captured stderr is also written here.
	Timeout    time.Duration     // Zero means no timeout.
}

// New returns a Command for the given program.
func New(program string) *Command {
	return &Command{Program: program}
}

// Arg appends a single argument and returns the command.
func (c *Command) Arg(arg string) *Command {
	c.Args = append(c.Args, arg)
	return c
}

// WithArgs appends arguments and returns the command.
func (c *Command) WithArgs(args ...string) *Command {
	c.Args = append(c.Args, args...)
	return c
}

// Env sets one environment variable and returns the command.
func (c *Command) Env(key, value string) *Command {
	if c.Environ == nil {
		c.Environ = make(map[string]string)
	}

	c.Environ[key] = value

	return c
}

// WithCwd sets the working directory and returns the command.
func (c *Command) WithCwd(cwd string) *Command {
	c.Cwd = cwd
	return c
}

// WithStdin sets the standard input source and returns the command.
func (c *Command) WithStdin(src StdinSource) *Command {
	c.Stdin = src
	return c
}

// WithStdoutPath sets the stdout capture file and returns the command.
func (c *Command) WithStdoutPath(path string) *Command {
	c.StdoutPath = path
	return c
}

// WithStderrPath sets the stderr capture file and returns the command.
func (c *Command) WithStderrPath(path string) *Command {
	c.StderrPath = path
	return c
}

// WithTimeout sets the timeout and returns the command.
func (c *Command) WithTimeout(d time.Duration) *Command {
	c.Timeout = d
	return c
}

// String renders the command in a shell-like form for logs and for
// keying mock executors: sorted K=V pairs, the program, arguments
// (quoted when they contain spaces), then stdin/stdout/stderr
// redirections. The rendering is deterministic for a given Command.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Environ)+len(c.Args)+1)

	for _, k := range slices.Sorted(maps.Keys(c.Environ)) {
		parts = append(parts, k+"="+c.Environ[k])
	}

	parts = append(parts, c.Program)

	for _, arg := range c.Args {
		if strings.Contains(arg, " ") {
			arg = strconv.Quote(arg)
		}

		parts = append(parts, arg)
	}

	if c.Stdin != nil {
		parts = append(parts, "<", c.Stdin.String())
	}

	if c.StdoutPath != "" {
		parts = append(parts, ">", c.StdoutPath)
	}

	if c.StderrPath != "" {
		parts = append(parts, "2>", c.StderrPath)
	}

	return strings.Join(parts, " ")
}
