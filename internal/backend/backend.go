// Package backend invokes the ctx binary and captures its outcome.
//
// ctx is treated as an opaque black box: the adapter builds an argument
// list, runs the process with a deadline, and hands the raw streams back.
package backend

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

const (
	// DefaultBin is the backend binary resolved via PATH.
	DefaultBin = "ctx"
	// DefaultTimeout bounds a single backend invocation.
	DefaultTimeout = 60 * time.Second
)

// Outcome holds the result of one backend invocation.
// Exactly one of the failure modes applies: StartErr is non-nil when the
// process never ran, TimedOut is set when the deadline killed it, and a
// nonzero ExitCode means it ran and failed.
type Outcome struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Timeout  time.Duration // deadline that applied; set when TimedOut
	StartErr error         // non-nil when the process could not start
}

// NotFound reports whether the backend binary was missing from PATH.
func (o Outcome) NotFound() bool {
	return o.StartErr != nil && errors.Is(o.StartErr, exec.ErrNotFound)
}

// Runner abstracts backend execution for testability.
type Runner interface {
	Run(ctx context.Context, args ...string) Outcome
}

// ExecRunner is the production implementation of Runner.
type ExecRunner struct {
	// Bin is the backend binary. If empty, uses DefaultBin.
	Bin string
	// Dir is the working directory for invocations. If empty, uses the current directory.
	Dir string
	// Timeout bounds each invocation. If zero, uses DefaultTimeout.
	Timeout time.Duration
	// ExtraArgs are inserted before the per-call arguments, e.g. global
	// output flags that should apply to every command.
	ExtraArgs []string
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) Outcome {
	bin := r.Bin
	if bin == "" {
		bin = DefaultBin
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := append(append([]string{}, r.ExtraArgs...), args...)
	cmd := exec.CommandContext(ctx, bin, argv...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out
	}

	if ctx.Err() == context.DeadlineExceeded {
		out.TimedOut = true
		out.Timeout = timeout
		out.ExitCode = -1
		return out
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out
	}

	// Process could not start (e.g. binary not found).
	out.StartErr = err
	out.ExitCode = -1
	return out
}
