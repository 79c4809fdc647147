// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/proctor/internal/executor"
	"github.com/spf13/afero"
)

var (
	// ErrParseScenarios is returned when the YAML document cannot be parsed.
	ErrParseScenarios = errors.New("failed to parse scenarios")
	// ErrInvalidScenario is returned when a scenario is structurally invalid.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// File is a YAML document holding one or more scenarios.
type File struct {
	Scenarios []*Scenario `yaml:"scenarios"`
}

// Scenario describes one process run and its expected observable
// behaviour.
type Scenario struct {
	Name    string            `yaml:"name"`
	Program string            `yaml:"program"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
	Stdin   string            `yaml:"stdin,omitempty"`
	Timeout string            `yaml:"timeout,omitempty"` // Go duration string, e.g. "2s".
	Expect  Expectation       `yaml:"expect"`

	timeout time.Duration
}

// Expectation is the set of checks applied to a scenario's output.
// Pointer fields are only checked when present. ExitCode and Signal
// are mutually exclusive.
type Expectation struct {
	ExitCode *int    `yaml:"exit_code,omitempty"`
	Signal   *int    `yaml:"signal,omitempty"`
	Timeout  bool    `yaml:"timeout,omitempty"`
	Stdout   *string `yaml:"stdout,omitempty"`
	Stderr   *string `yaml:"stderr,omitempty"`
}

// Result is the outcome of running one scenario. Err aggregates every
// expectation that did not hold; a nil Err means the scenario passed.
type Result struct {
	Name   string
	Output *executor.Output
	Err    error
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return r.Err == nil
}

// Load parses and validates a scenarios YAML document.
func Load(data []byte) (*File, error) {
	f := new(File)
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Join(ErrParseScenarios, err)
	}

	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios defined", ErrInvalidScenario)
	}

	for i, s := range f.Scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
	}

	return f, nil
}

// LoadFile reads and parses a scenarios file.
func LoadFile(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Join(ErrParseScenarios, err)
	}

	return Load(data)
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}

	if s.Program == "" {
		return fmt.Errorf("%w: program is required", ErrInvalidScenario)
	}

	if s.Expect.ExitCode != nil && s.Expect.Signal != nil {
		return fmt.Errorf("%w: exit_code and signal are mutually exclusive", ErrInvalidScenario)
	}

	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return fmt.Errorf("%w: bad timeout: %w", ErrInvalidScenario, err)
		}

		s.timeout = d
	}

	return nil
}

// command builds the executor command for this scenario.
func (s *Scenario) command() *executor.Command {
	cmd := executor.New(s.Program).WithArgs(s.Args...).WithTimeout(s.timeout)

	for k, v := range s.Env {
		cmd.Env(k, v)
	}

	if s.Stdin != "" {
		cmd.WithStdin(executor.StdinString(s.Stdin))
	}

	return cmd
}

// Run executes the scenario on the given executor and checks the
// expectations. Executor infrastructure failures surface in Result.Err
// like any other failure.
func (s *Scenario) Run(ctx context.Context, exe executor.Executor) *Result {
	res := &Result{Name: s.Name}

	out, err := exe.Run(ctx, s.command())
	if err != nil {
		res.Err = err
		return res
	}

	res.Output = out
	res.Err = s.Expect.check(out)

	return res
}

// check compares an output against the expectation and aggregates
// every mismatch.
func (e *Expectation) check(out *executor.Output) error {
	var errs *multierror.Error

	if e.ExitCode != nil {
		code, ok := out.Status.ExitCode()
		if !ok || !out.Status.Completed() || code != *e.ExitCode {
			errs = multierror.Append(errs,
				fmt.Errorf("exit code: got %s, want %d", out.Status, *e.ExitCode))
		}
	}

	if e.Signal != nil {
		sig, ok := out.Status.Signal()
		if !ok || sig != syscall.Signal(*e.Signal) {
			errs = multierror.Append(errs,
				fmt.Errorf("signal: got %s, want signal %d", out.Status, *e.Signal))
		}
	}

	if e.Timeout != out.Status.TimedOut() {
		errs = multierror.Append(errs,
			fmt.Errorf("timeout: got %s, want timeout=%t", out.Status, e.Timeout))
	}

	if e.Stdout != nil && out.Stdout != *e.Stdout {
		errs = multierror.Append(errs,
			fmt.Errorf("stdout: got %q, want %q", out.Stdout, *e.Stdout))
	}

	if e.Stderr != nil && out.Stderr != *e.Stderr {
		errs = multierror.Append(errs,
			fmt.Errorf("stderr: got %q, want %q", out.Stderr, *e.Stderr))
	}

	return errs.ErrorOrNil()
}
