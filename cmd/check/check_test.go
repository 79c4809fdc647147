// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/proctor/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFiles(t *testing.T) {
	mock := executor.NewMockExecutor().
		Expect(
			executor.New("fx").WithArgs("rc", "0"),
			&executor.Output{Status: executor.StatusOk()},
		).
		Expect(
			executor.New("fx").WithArgs("rc", "1"),
			&executor.Output{Status: executor.StatusFailure(1)},
		)

	var buf bytes.Buffer

	passed, err := runFiles(context.Background(), mock, []string{"./testdata/scenarios.yaml"}, &buf)
	require.NoError(t, err)
	assert.False(t, passed, "a failing scenario should fail the run")

	out := buf.String()
	assert.Contains(t, out, "PASS clean exit\n")
	assert.Contains(t, out, "FAIL wrong exit code:")
	assert.Contains(t, out, "exit code")

	require.Equal(t, []string{"fx rc 0", "fx rc 1"}, mock.Calls())
}

func TestRunFiles_MissingFile(t *testing.T) {
	mock := executor.NewMockExecutor()

	var buf bytes.Buffer

	_, err := runFiles(context.Background(), mock, []string{"./testdata/nope.yaml"}, &buf)
	require.ErrorIs(t, err, ErrGetScenarioFile)
	assert.Empty(t, mock.Calls())
}

func TestFetchFile(t *testing.T) {
	data, err := fetchFile(context.Background(), "./testdata/scenarios.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "clean exit")
}

func TestFetchFile_Empty(t *testing.T) {
	_, err := fetchFile(context.Background(), "")
	require.ErrorIs(t, err, ErrGetScenarioFile)
}
