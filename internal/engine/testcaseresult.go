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
	"time"
)

// TestCaseResult represents the result of a single test case.
type TestCaseResult struct {
	SuiteName  string
	Name       string
	Status     Status
	Mismatches []Mismatch
	Error      error    // Execution or setup error, when the case could not be compared
	Warnings   []string // Non-fatal diagnostics such as teardown failures
	Duration   time.Duration
	StartTime  time.Time

	Setup     *HookResult
	Teardown  *HookResult
	Execution *CaseExecution // nil when no process was spawned
}

// NewTestCaseResult creates a new test case result.
func NewTestCaseResult(suiteName, name string) *TestCaseResult {
	return &TestCaseResult{
		SuiteName: suiteName,
		Name:      name,
		Status:    StatusPass(), // Default to pass
		StartTime: time.Now(),
	}
}

// Fail marks a test case as failed with the given error and completes it, returning the result for chaining.
func (tcr *TestCaseResult) Fail(err error) *TestCaseResult {
	tcr.Error = err
	tcr.Status = StatusFail()

	return tcr.Complete()
}

// FailMismatches marks a test case as failed by the given mismatches and completes it.
func (tcr *TestCaseResult) FailMismatches(mismatches []Mismatch) *TestCaseResult {
	tcr.Mismatches = mismatches
	tcr.Status = StatusFail()

	return tcr.Complete()
}

// TimeOut marks a test case as timed out and completes it.
func (tcr *TestCaseResult) TimeOut() *TestCaseResult {
	tcr.Status = StatusTimeout()
	return tcr.Complete()
}

// Skip marks a test case as skipped and completes it.
func (tcr *TestCaseResult) Skip() *TestCaseResult {
	tcr.Status = StatusSkip()
	return tcr.Complete()
}

// Complete finalizes a test case result with duration and returns the result for chaining.
func (tcr *TestCaseResult) Complete() *TestCaseResult {
	tcr.Duration = time.Since(tcr.StartTime)
	return tcr
}

// AddWarning attaches a non-fatal diagnostic. It never changes the status.
func (tcr *TestCaseResult) AddWarning(format string, args ...any) {
	tcr.Warnings = append(tcr.Warnings, fmt.Sprintf(format, args...))
}

// FullName returns the suite-qualified name of the test case.
func (tcr *TestCaseResult) FullName() string {
	return tcr.SuiteName + "/" + tcr.Name
}
