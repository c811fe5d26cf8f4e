/*
Copyright 2025 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package executor spawns the processes of a test case and captures what they do.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/engine"
	testexecutionUtils "github.com/refery/refery/internal/testexecution/utils"
	"github.com/refery/refery/internal/utils"
)

// DefaultWaitDelay bounds how long output pipes are drained after a process is killed or exits,
// in case a descendant keeps them open.
const DefaultWaitDelay = 500 * time.Millisecond

// Executor runs the subject and reference executables of test cases.
type Executor struct {
	debug     bool
	waitDelay time.Duration
}

// New creates a new executor.
func New(debug bool) *Executor {
	return &Executor{
		debug:     debug,
		waitDelay: DefaultWaitDelay,
	}
}

// Execute runs the subject of the test case and, when the case has one, its reference.
// Both processes get the same arguments and standard input and run concurrently, each under its own timeout.
// Cancelling ctx kills the processes still running.
func (e *Executor) Execute(ctx context.Context, tc *api.TestCase) engine.CaseExecution {
	var (
		execution engine.CaseExecution
		g         errgroup.Group
	)

	if tc.HasRef() {
		g.Go(func() error {
			ref := e.Spawn(ctx, append([]string{*tc.Ref}, tc.Args...), tc.Stdin, tc.Timeout)
			execution.Reference = &ref

			return nil
		})
	}

	g.Go(func() error {
		execution.Subject = e.Spawn(ctx, tc.Command(), tc.Stdin, tc.Timeout)
		return nil
	})

	_ = g.Wait() // spawn failures are recorded in the results

	return execution
}

// Spawn runs a single process to completion and returns what was observed.
// A zero timeout waits without bound. On timeout the process is killed and the output captured so far is kept.
func (e *Executor) Spawn(ctx context.Context, command []string, stdin string, timeout time.Duration) engine.ExecutionResult {
	result := engine.ExecutionResult{
		Command:  slices.Clone(command),
		ExitCode: -1,
	}

	path, err := testexecutionUtils.ExpandCommandPath(command[0])
	if err != nil {
		result.Err = &engine.ExecutionError{Path: command[0], Err: err}
		return result
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, command[1:]...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.waitDelay

	if e.debug {
		utils.DebugPrintf("Spawning %s (timeout: %s)\n", result.CommandLine(), formatTimeout(timeout))
	}

	start := time.Now()
	err = cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.TimedOut = true
	case ctx.Err() != nil:
		result.Err = &engine.ExecutionError{Path: command[0], Err: ctx.Err()}
	case errors.As(err, &exitErr):
		// Non-zero exit status, an ordinary observation.
	case errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil:
		// The process exited but a descendant kept its output open.
	default:
		result.Err = &engine.ExecutionError{Path: command[0], Err: err}
	}

	if e.debug {
		utils.DebugPrintf("%s finished in %s: exit code %d, timed out: %t\n", command[0], result.Duration, result.ExitCode, result.TimedOut)
	}

	return result
}

func formatTimeout(timeout time.Duration) string {
	if timeout <= 0 {
		return "none"
	}

	return timeout.String()
}
