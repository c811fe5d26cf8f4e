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

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/utils"
)

// hookError describes a failed setup or teardown command. The underlying error stays reachable for errors.As.
type hookError struct {
	msg string
	err error
}

func (e *hookError) Error() string { return e.msg }

func (e *hookError) Unwrap() error { return e.err }

// hookExecutor handles execution of setup and teardown commands.
type hookExecutor struct {
	shell      []string
	debug      bool
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

// newHookExecutor creates a new hook executor. Commands are run as shell + command.
func newHookExecutor(
	shell []string,
	debug bool,
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, []byte, error),
) *hookExecutor {
	return &hookExecutor{
		shell:      shell,
		debug:      debug,
		runCommand: runCommand,
	}
}

// executeHook runs a single hook command through the shell and returns its result.
// A failure is reported in the result's Error, never returned.
func (e *hookExecutor) executeHook(ctx context.Context, phase, command string) engine.HookResult {
	if e.debug {
		utils.DebugPrintf("Executing %s hook: %s\n", phase, command)
	}

	argv := append(slices.Clone(e.shell), command)

	start := time.Now()
	stdout, stderr, err := e.runCommand(ctx, argv[0], argv[1:]...)

	if err != nil {
		err = newHookError(phase, command, stderr, err)
	}

	result := engine.NewHookResult(phase, command, stdout, stderr, err)
	result.Duration = time.Since(start)

	return result
}

func newHookError(phase, command string, stderr []byte, err error) error {
	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		return &hookError{msg: fmt.Sprintf("%s hook could not run: %v", phase, err), err: err}
	}

	stderrStr := strings.TrimSpace(string(stderr))
	// Indent multiline stderr output for better readability
	if strings.Contains(stderrStr, "\n") {
		stderrStr = strings.ReplaceAll(stderrStr, "\n", "\n    ")
	}

	msg := fmt.Sprintf("%s hook failed with exit code %d", phase, exitError.ExitCode())
	if stderrStr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderrStr)
	} else {
		msg = fmt.Sprintf("%s: %s", msg, command)
	}

	return &hookError{msg: msg, err: err}
}

// runCommand runs a command to completion and returns its captured output.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second
	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}
