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

import "time"

// TestSuiteResult represents the result of running a test suite.
type TestSuiteResult struct {
	Name      string
	Results   []TestCaseResult
	Duration  time.Duration
	Status    Status // StatusPass or StatusFail - overall status
	StartTime time.Time
}

// NewTestSuiteResult creates a new test suite result.
func NewTestSuiteResult(name string) *TestSuiteResult {
	return &TestSuiteResult{
		Name:      name,
		Status:    StatusPass(), // Default to pass
		StartTime: time.Now(),
	}
}

// AddResult adds a test case result to the test suite.
func (tsr *TestSuiteResult) AddResult(result *TestCaseResult) {
	tsr.Results = append(tsr.Results, *result)

	// Update overall status if any test failed
	if result.Status.IsFailure() {
		tsr.Status = StatusFail()
	}
}

// Complete finalizes the test suite result with total duration and returns the result for chaining.
func (tsr *TestSuiteResult) Complete() *TestSuiteResult {
	tsr.Duration = time.Since(tsr.StartTime)
	return tsr
}

// HasFailures returns true if any test failed.
func (tsr *TestSuiteResult) HasFailures() bool {
	return tsr.Status == StatusFail()
}

// Counts returns the number of test cases per status.
func (tsr *TestSuiteResult) Counts() Counts {
	var c Counts
	for i := range tsr.Results {
		c.add(tsr.Results[i].Status)
	}

	return c
}
