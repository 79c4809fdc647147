// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockExecutor(t *testing.T) {
	ctx := context.Background()

	canned := &Output{
		Status: StatusFailure(3),
		Stdout: "out",
		Stderr: "err",
	}

	mock := NewMockExecutor().Expect(New("prog").Arg("a"), canned)

	out, err := mock.Run(ctx, New("prog").Arg("a"))
	require.NoError(t, err)
	assert.Equal(t, canned, out)

	_, err = mock.Run(ctx, New("prog").Arg("b"))
	require.ErrorIs(t, err, ErrUnexpectedCommand)

	assert.Equal(t, []string{"prog a", "prog b"}, mock.Calls())
}
