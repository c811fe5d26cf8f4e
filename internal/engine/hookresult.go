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

// Package engine provides the result model of a test run and its console rendering.
package engine

import (
	"errors"
	"os/exec"
	"time"
)

// Hook phases.
const (
	HookSetup    = "setup"
	HookTeardown = "teardown"
)

// HookResult represents the result of executing a setup or teardown command.
type HookResult struct {
	Phase    string        // HookSetup or HookTeardown
	Command  string        // The command that was executed
	Stdout   []byte        // Standard output
	Stderr   []byte        // Standard error
	Duration time.Duration // Wall time of the command
	Error    error         // Execution error (nil if successful)
}

// NewHookResult creates a new HookResult with the given parameters.
func NewHookResult(phase, command string, stdout, stderr []byte, err error) HookResult {
	return HookResult{
		Phase:   phase,
		Command: command,
		Stdout:  stdout,
		Stderr:  stderr,
		Error:   err,
	}
}

// Failed returns true if the hook command could not run or exited non-zero.
func (h *HookResult) Failed() bool {
	return h != nil && h.Error != nil
}

// ExitCode returns the exit code of the hook command, or -1 when it did not exit normally.
func (h *HookResult) ExitCode() int {
	if h == nil || h.Error == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(h.Error, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
