// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the command that runs a single program under
// the executor and reports how it ended.
package run

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/proctor/internal/executor"
	"github.com/matt-FFFFFF/proctor/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const (
	timeoutFlag   = "timeout"
	stdinFlag     = "stdin"
	stdinFileFlag = "stdin-file"
	stdoutFlag    = "stdout"
	stderrFlag    = "stderr"
	envFlag       = "env"
	jsonFlag      = "json"
)

// timeoutExitCode is reported when the child is killed on timeout,
// matching the timeout(1) convention.
const timeoutExitCode = 124

// signalExitBase is added to the signal number for signalled
// children, matching the shell convention.
const signalExitBase = 128

// RunCmd runs a single command under the executor, prints the
// captured streams and the status classification, and mirrors the
// child's exit code.
var RunCmd = &cli.Command{
	Name:      "run",
	Usage:     "Run a program and classify how it ends",
	ArgsUsage: "PROGRAM [ARGS...]",
	Description: `Run a program as a supervised child process with a cleared
environment. Both output streams are captured and printed, stdin can be
fed from a literal string or a file, and an optional timeout kills the
child when exceeded.

The exit code mirrors the child: its own code when it completed,
128+signal when it died by signal, and 124 on timeout.`,
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:     timeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Kill the child if it runs longer than this",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     stdinFlag,
			Usage:    "Feed this literal string to the child's stdin",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:      stdinFileFlag,
			Usage:     "Feed this file to the child's stdin",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:      stdoutFlag,
			Usage:     "Also write captured stdout to this file",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:      stderrFlag,
			Usage:     "Also write captured stderr to this file",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringSliceFlag{
			Name:    envFlag,
			Aliases: []string{"e"},
			Usage:   "Set an environment variable for the child (KEY=VALUE, repeatable)",
		},
		&cli.BoolFlag{
			Name:        jsonFlag,
			Usage:       "Print the result as JSON",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("Please provide a program to run", 1)
	}

	c, err := buildCommand(cmd, args)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	exe := &executor.OSExecutor{SigCh: signalbroker.New(ctx)}

	out, err := exe.Run(ctx, c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("run failed: %s", err.Error()), 1)
	}

	if cmd.Bool(jsonFlag) {
		if err := writeJSON(cmd.Writer, out); err != nil {
			return cli.Exit(fmt.Sprintf("failed to write result: %s", err.Error()), 1)
		}
	} else {
		writeText(cmd.Writer, out)
	}

	return exitForStatus(out.Status)
}

// buildCommand translates the CLI surface into an executor command.
func buildCommand(cmd *cli.Command, args []string) (*executor.Command, error) {
	c := executor.New(args[0]).
		WithArgs(args[1:]...).
		WithTimeout(cmd.Duration(timeoutFlag)).
		WithStdoutPath(cmd.String(stdoutFlag)).
		WithStderrPath(cmd.String(stderrFlag))

	env, err := parseEnvPairs(cmd.StringSlice(envFlag))
	if err != nil {
		return nil, err
	}

	for k, v := range env {
		c.Env(k, v)
	}

	stdin, err := selectStdin(cmd.String(stdinFlag), cmd.String(stdinFileFlag))
	if err != nil {
		return nil, err
	}

	if stdin != nil {
		c.WithStdin(stdin)
	}

	return c, nil
}

// parseEnvPairs parses repeated KEY=VALUE flag values.
func parseEnvPairs(kvs []string) (map[string]string, error) {
	env := make(map[string]string, len(kvs))

	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad --%s value %q, want KEY=VALUE", envFlag, kv)
		}

		env[k] = v
	}

	return env, nil
}

// selectStdin picks the stdin source from the mutually exclusive
// literal and file flags. Both empty means no stdin.
func selectStdin(literal, file string) (executor.StdinSource, error) {
	switch {
	case literal != "" && file != "":
		return nil, fmt.Errorf("--%s and --%s are mutually exclusive", stdinFlag, stdinFileFlag)
	case literal != "":
		return executor.StdinString(literal), nil
	case file != "":
		return executor.StdinPath(file), nil
	default:
		return nil, nil
	}
}

func writeText(w io.Writer, out *executor.Output) {
	if out.Stdout != "" {
		fmt.Fprintf(w, "--- stdout ---\n%s", out.Stdout)

		if !strings.HasSuffix(out.Stdout, "\n") {
			fmt.Fprintln(w)
		}
	}

	if out.Stderr != "" {
		fmt.Fprintf(w, "--- stderr ---\n%s", out.Stderr)

		if !strings.HasSuffix(out.Stderr, "\n") {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "status: %s\n", out.Status)
}

// exitForStatus mirrors the child's ending as the CLI's exit code.
func exitForStatus(status executor.ExitStatus) error {
	switch {
	case status.IsOk():
		return nil
	case status.TimedOut():
		return cli.Exit("", timeoutExitCode)
	default:
		if sig, ok := status.Signal(); ok {
			return cli.Exit("", signalExitBase+int(sig))
		}

		code, _ := status.ExitCode()

		return cli.Exit("", code)
	}
}
