// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/proctor/internal/executor"
	"golang.org/x/term"
)

const jsonIndent = 2

// writeJSON renders the output as JSON, coloured when stdout is a
// terminal.
func writeJSON(w io.Writer, out *executor.Output) error {
	obj := map[string]any{
		"status":    out.Status.String(),
		"timed_out": out.Status.TimedOut(),
		"stdout":    out.Stdout,
		"stderr":    out.Stderr,
	}

	if code, ok := out.Status.ExitCode(); ok {
		obj["exit_code"] = code
	}

	if sig, ok := out.Status.Signal(); ok {
		obj["signal"] = int(sig)
	}

	// colorjson only understands the value shapes encoding/json
	// produces, so round-trip through it first.
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	var plain map[string]any
	if err := json.Unmarshal(raw, &plain); err != nil {
		return err
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = jsonIndent
	formatter.DisabledColor = !term.IsTerminal(int(os.Stdout.Fd()))

	rendered, err := formatter.Marshal(plain)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(rendered))

	return err
}
