// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package check implements the command that runs scenario files and
// reports pass/fail per scenario.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/proctor/internal/ctxlog"
	"github.com/matt-FFFFFF/proctor/internal/executor"
	"github.com/matt-FFFFFF/proctor/internal/scenario"
	"github.com/urfave/cli/v3"
)

// ErrScenariosFailed is returned when at least one scenario failed.
var ErrScenariosFailed = errors.New("one or more scenarios failed")

// CheckCmd runs one or more YAML scenario files against the OS
// executor and exits 1 if any scenario failed.
var CheckCmd = &cli.Command{
	Name:      "check",
	Usage:     "Run scenario files and check expectations",
	ArgsUsage: "FILE [FILE...]",
	Description: `Run every scenario in the given YAML files under the executor and
compare the observed behaviour to the expectations.

File locations use Hashicorp's go-getter syntax, so scenarios can be
fetched from remote sources as well as the local filesystem.
See https://github.com/hashicorp/go-getter.`,
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("Please provide at least one scenario file", 1)
	}

	exe := &executor.OSExecutor{}

	ok, err := runFiles(ctx, exe, paths, cmd.Writer)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if !ok {
		return cli.Exit(ErrScenariosFailed.Error(), 1)
	}

	return nil
}

// runFiles fetches, loads and runs each scenario file in order,
// writing one line per scenario. It reports whether everything passed.
func runFiles(ctx context.Context, exe executor.Executor, paths []string, w io.Writer) (bool, error) {
	logger := ctxlog.Logger(ctx)
	passed := true

	for _, path := range paths {
		data, err := fetchFile(ctx, path)
		if err != nil {
			return false, err
		}

		file, err := scenario.Load(data)
		if err != nil {
			return false, fmt.Errorf("%s: %w", path, err)
		}

		logger.Debug("loaded scenario file", "path", path, "scenarios", len(file.Scenarios))

		for _, s := range file.Scenarios {
			res := s.Run(ctx, exe)
			if res.Passed() {
				fmt.Fprintf(w, "PASS %s\n", res.Name)
				continue
			}

			passed = false

			fmt.Fprintf(w, "FAIL %s: %s\n", res.Name, res.Err.Error())
		}
	}

	return passed, nil
}
