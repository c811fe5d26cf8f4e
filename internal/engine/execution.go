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

package engine

import (
	"fmt"
	"strings"
	"time"
)

// ExecutionResult is what was observed on a single process.
type ExecutionResult struct {
	Command  []string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	TimedOut bool
	Duration time.Duration
	Err      error // Set when the process could not be spawned or waited for
}

// CommandLine returns the command as it would be typed in a shell, for display.
func (r *ExecutionResult) CommandLine() string {
	parts := make([]string, 0, len(r.Command))
	for _, p := range r.Command {
		if p == "" || strings.ContainsAny(p, " \t\n'\"\\$`") {
			p = "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
		}

		parts = append(parts, p)
	}

	return strings.Join(parts, " ")
}

// CaseExecution groups the processes spawned for one test case.
type CaseExecution struct {
	Subject   ExecutionResult
	Reference *ExecutionResult // nil when the case has no ref
}

// ExecutionError reports an executable that could not be spawned.
type ExecutionError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
