// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fixture

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatch runs Dispatch with fresh buffers for a fixture invocation
// of the given argv tail.
func dispatch(t *testing.T, input string, argv ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errBuf bytes.Buffer

	code = Dispatch(append([]string{"fixture"}, argv...), strings.NewReader(input), &out, &errBuf)

	return code, out.String(), errBuf.String()
}

func TestDispatch_NoArgs(t *testing.T) {
	code, stdout, stderr := dispatch(t, "")
	assert.Zero(t, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestDispatch_EmptyArgv(t *testing.T) {
	code := Dispatch(nil, strings.NewReader(""), io.Discard, io.Discard)
	assert.Zero(t, code)

	code = Dispatch([]string{}, strings.NewReader(""), io.Discard, io.Discard)
	assert.Zero(t, code)
}

func TestDispatch_UnknownVerb(t *testing.T) {
	code, stdout, stderr := dispatch(t, "", "not-a-verb")
	assert.Zero(t, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestDispatch_Usersig(t *testing.T) {
	code, stdout, stderr := dispatch(t, "", "usersig")
	assert.Zero(t, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestDispatch_RC(t *testing.T) {
	testCases := []struct {
		name string
		arg  string
		want int
	}{
		{name: "positive", arg: "7", want: 7},
		{name: "zero", arg: "0", want: 0},
		{name: "negative", arg: "-10", want: -10},
		{name: "unparseable is zero", arg: "garbage", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := dispatch(t, "", "rc", tc.arg)
			assert.Equal(t, tc.want, code)
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestDispatch_TimeoutCompletes(t *testing.T) {
	delay := 10 * time.Millisecond

	stub := gostub.Stub(&sleepDuration, delay)
	defer stub.Reset()

	start := time.Now()
	code, stdout, stderr := dispatch(t, "", "timeout")

	assert.Zero(t, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestDispatch_MissingArgPanics(t *testing.T) {
	for _, verb := range []string{"rc", "stderr", "stdouterr"} {
		t.Run(verb, func(t *testing.T) {
			require.Panics(t, func() {
				dispatch(t, "", verb)
			})
		})
	}
}

func TestDispatch_ExtraArgPanics(t *testing.T) {
	require.Panics(t, func() {
		dispatch(t, "", "stderr", "msg", "surplus")
	})
}

func TestDispatch_Stderr(t *testing.T) {
	code, stdout, stderr := dispatch(t, "", "stderr", "print this to stderr")
	assert.Zero(t, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "print this to stderr\n", stderr)
}

func TestDispatch_StdoutErr(t *testing.T) {
	code, stdout, stderr := dispatch(t, "", "stdouterr", "yoda")
	assert.Zero(t, code)
	assert.Equal(t, "OUT: yoda\n", stdout)
	assert.Equal(t, "ERR: yoda\n", stderr)
}

func TestDispatch_ReadLineFromStdin(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "one line of many", input: "hello\nworld\n", want: "hello\n"},
		{name: "newline included", input: "hello\n", want: "hello\n"},
		{name: "partial line at EOF", input: "partial", want: "partial"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := dispatch(t, tc.input, "read_line_from_stdin")
			assert.Zero(t, code)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}
