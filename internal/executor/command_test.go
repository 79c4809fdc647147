// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommandBuilder(t *testing.T) {
	cmd := New("/bin/prog").
		Arg("one").
		WithArgs("two", "three").
		Env("FOO", "bar").
		WithCwd("/tmp").
		WithTimeout(2 * time.Second)

	assert.Equal(t, "/bin/prog", cmd.Program)
	assert.Equal(t, []string{"one", "two", "three"}, cmd.Args)
	assert.Equal(t, map[string]string{"FOO": "bar"}, cmd.Environ)
	assert.Equal(t, "/tmp", cmd.Cwd)
	assert.Equal(t, 2*time.Second, cmd.Timeout)
}

func TestCommandString(t *testing.T) {
	testCases := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			name: "program only",
			cmd:  New("echo"),
			want: "echo",
		},
		{
			name: "args with spaces are quoted",
			cmd:  New("echo").Arg("plain").Arg("two words"),
			want: `echo plain "two words"`,
		},
		{
			name: "env sorted by key",
			cmd:  New("prog").Env("ZED", "1").Env("ALPHA", "2"),
			want: "ALPHA=2 ZED=1 prog",
		},
		{
			name: "stdin string",
			cmd:  New("prog").WithStdin(StdinString("hi")),
			want: `prog < "hi"`,
		},
		{
			name: "stdin path and captures",
			cmd: New("prog").
				WithStdin(StdinPath("/tmp/in")).
				WithStdoutPath("/tmp/out").
				WithStderrPath("/tmp/err"),
			want: "prog < /tmp/in > /tmp/out 2> /tmp/err",
		},
		{
			name: "stdin reader",
			cmd:  New("prog").WithStdin(StdinFrom(nil)),
			want: "prog < [reader]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cmd.String())
		})
	}
}
