// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"fmt"
	"os"

	"github.com/matt-FFFFFF/proctor"
	"github.com/matt-FFFFFF/proctor/cmd/check"
	"github.com/matt-FFFFFF/proctor/cmd/run"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		check.CheckCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "proctor",
	Description: `Proctor runs child processes under supervision and reports how they
ended: a clean exit, a nonzero code, death by signal, or killed on
timeout. It captures both output streams, can feed stdin from a string
or file, and checks YAML-described scenarios against the observed
behaviour. The companion fixture binary produces each of those
behaviours on demand.`,
	Usage:     "proctor run -- ./myprogram arg1 arg2",
	Version:   fmt.Sprintf("%s (commit: %s)", proctor.Version, proctor.Commit),
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
