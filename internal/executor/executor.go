// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/matt-FFFFFF/proctor/internal/ctxlog"
	"github.com/spf13/afero"
)

// maxBufferSize bounds each captured stream.
const maxBufferSize = 8 * 1024 * 1024 // 8MB

const captureFileMode = 0o644

var (
	// ErrCouldNotStartProcess is returned when the child could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrStdinSource is returned when the command's stdin source could not be opened.
	ErrStdinSource = errors.New("could not open stdin source")
	// ErrBufferOverflow is returned when a captured stream exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
	// ErrWaitFailed is returned when waiting on the child failed for a reason
	// other than the child's own exit status.
	ErrWaitFailed = errors.New("failed waiting for process")
	// ErrCaptureFile is returned when a stdout/stderr capture file could not be written.
	ErrCaptureFile = errors.New("could not write capture file")
)

// Output is the observed result of running a Command: how the child
// ended and everything it wrote to its standard streams. Streams are
// always captured; they are additionally written to files when the
// Command asks for that.
type Output struct {
	Status ExitStatus
	Stdout string
	Stderr string
}

// An Executor runs a Command and reports its Output. Implementations
// return an error only for infrastructure failures; a child that
// crashes, exits nonzero or times out is a classified Output, not an
// error.
type Executor interface {
	Run(ctx context.Context, cmd *Command) (*Output, error)
}

var _ Executor = (*OSExecutor)(nil)

// OSExecutor runs commands as real child processes of the current
// one. The zero value is ready to use.
type OSExecutor struct {
	// Fs is used to open stdin sources and write capture files.
	// Defaults to the operating system filesystem.
	Fs afero.Fs

	// SigCh optionally receives signals to forward to the running
	// child. The first signal of a kind is passed through; a repeat of
	// the same signal kills the child outright.
	SigCh chan os.Signal
}

// Run implements the Executor interface. The child runs with a fresh
// environment containing exactly cmd.Environ.
func (e *OSExecutor) Run(ctx context.Context, cmd *Command) (*Output, error) {
	logger := ctxlog.Logger(ctx).With("executor", "os")
	logger.Debug("running command", "command", cmd.String())

	fs := e.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	runCtx := ctx

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	child := exec.Command(cmd.Program, cmd.Args...)
	child.Dir = cmd.Cwd
	child.Env = environSlice(cmd.Environ)

	stdout := &boundedBuffer{max: maxBufferSize}
	stderr := &boundedBuffer{max: maxBufferSize}
	child.Stdout = stdout
	child.Stderr = stderr

	if cmd.Stdin != nil {
		r, closeFn, err := cmd.Stdin.open(fs)
		if err != nil {
			return nil, errors.Join(ErrStdinSource, err)
		}

		if closeFn != nil {
			defer closeFn() //nolint:errcheck
		}

		child.Stdin = r
	}

	if err := child.Start(); err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", child.Process.Pid)

	done := make(chan error, 1)
	go func() {
		done <- child.Wait()
	}()

	waitErr, timedOut := e.supervise(runCtx, child, done, cmd.Timeout, logger)

	out := &Output{
		Stdout: stdout.buf.String(),
		Stderr: stderr.buf.String(),
	}

	switch {
	case timedOut:
		out.Status = StatusTimeout(cmd.Timeout)
	case runCtx.Err() != nil:
		// Cancelled from outside rather than by the command's own
		// timeout; the child has been killed.
		return out, runCtx.Err()
	default:
		var exitErr *exec.ExitError

		switch {
		case waitErr == nil:
			out.Status = statusFromState(child.ProcessState)
		case errors.As(waitErr, &exitErr):
			out.Status = statusFromState(exitErr.ProcessState)
		default:
			return out, errors.Join(ErrWaitFailed, waitErr)
		}
	}

	logger.Debug("process finished",
		"status", out.Status.String(),
		"stdoutBytes", len(out.Stdout),
		"stderrBytes", len(out.Stderr),
	)

	if err := writeCaptures(fs, cmd, out); err != nil {
		return out, err
	}

	if stdout.truncated || stderr.truncated {
		return out, ErrBufferOverflow
	}

	return out, nil
}

// supervise waits for the child while watching for cancellation and
// forwarded signals. It reports the child's wait error and whether the
// child was killed by the command's own timeout.
func (e *OSExecutor) supervise(
	ctx context.Context,
	child *exec.Cmd,
	done <-chan error,
	timeout time.Duration,
	logger *slog.Logger,
) (waitErr error, timedOut bool) {
	sigSeen := make(map[os.Signal]struct{})
	ctxDone := ctx.Done()

	for {
		select {
		case waitErr = <-done:
			return waitErr, timedOut

		case <-ctxDone:
			ctxDone = nil // fire once

			if timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Debug("timeout exceeded, killing process", "timeout", timeout)

				timedOut = true
			} else {
				logger.Info("context done, killing process")
			}

			killChild(child.Process, logger)

		case s := <-e.SigCh:
			if _, ok := sigSeen[s]; ok {
				logger.Info("received duplicate signal, killing process", "signal", s.String())
				killChild(child.Process, logger)

				continue
			}

			sigSeen[s] = struct{}{}

			logger.Info("forwarding signal", "signal", s.String())

			if err := child.Process.Signal(s); err != nil {
				logger.Info("failed to forward signal", "signal", s.String(), "error", err)
			}
		}
	}
}

// writeCaptures tees the captured streams to the command's capture
// files, where configured.
func writeCaptures(fs afero.Fs, cmd *Command, out *Output) error {
	for _, capture := range []struct {
		path string
		data string
	}{
		{cmd.StdoutPath, out.Stdout},
		{cmd.StderrPath, out.Stderr},
	} {
		if capture.path == "" {
			continue
		}

		if err := afero.WriteFile(fs, capture.path, []byte(capture.data), captureFileMode); err != nil {
			return errors.Join(ErrCaptureFile, err)
		}
	}

	return nil
}

// environSlice renders the environment map for os/exec. It is never
// nil, so the child always starts from a cleared environment.
func environSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))

	for k, v := range env {
		out = append(out, k+"="+v)
	}

	return out
}

func killChild(ps *os.Process, logger *slog.Logger) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			logger.Debug("process already done", "pid", ps.Pid)
			return
		}

		logger.Error("process kill error", "pid", ps.Pid, "error", err)

		return
	}

	logger.Info("process killed", "pid", ps.Pid)
}

// boundedBuffer keeps at most max bytes and reports whether anything
// beyond that was discarded. Write never fails, so a chatty child is
// truncated rather than broken with EPIPE.
type boundedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)

	if remaining := b.max - b.buf.Len(); n > remaining {
		b.truncated = true
		p = p[:remaining]
	}

	b.buf.Write(p)

	return n, nil
}
