// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"fmt"
	"sync"
)

// ErrUnexpectedCommand is returned by MockExecutor for a command it
// has no canned output for.
var ErrUnexpectedCommand = fmt.Errorf("no canned output for command")

var _ Executor = (*MockExecutor)(nil)

// MockExecutor is an Executor with canned outputs, keyed by the
// rendered command string. It lets code that runs processes be tested
// without side effects on the system: register the outputs you want,
// then assert on the recorded calls.
type MockExecutor struct {
	mu      sync.Mutex
	outputs map[string]*Output
	calls   []string
}

// NewMockExecutor returns an empty MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{outputs: make(map[string]*Output)}
}

// Expect registers the output to return when cmd is run.
func (m *MockExecutor) Expect(cmd *Command, out *Output) *MockExecutor {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outputs[cmd.String()] = out

	return m
}

// Run implements the Executor interface.
func (m *MockExecutor) Run(_ context.Context, cmd *Command) (*Output, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := cmd.String()
	m.calls = append(m.calls, key)

	out, ok := m.outputs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedCommand, key)
	}

	return out, nil
}

// Calls returns the rendered command strings run so far, in order.
func (m *MockExecutor) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]string, len(m.calls))
	copy(calls, m.calls)

	return calls
}
