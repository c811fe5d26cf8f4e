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
	"time"

	"github.com/google/uuid"
)

// AbortInterrupted is the abort reason used when the run is cancelled from outside.
const AbortInterrupted = "interrupted"

// RunResult is the state of a whole run, returned by the runner once it stops.
type RunResult struct {
	ID          uuid.UUID
	Suites      []TestSuiteResult // Only suites that started, in order
	Aborted     bool
	AbortReason string
	StartTime   time.Time
	Duration    time.Duration
}

// NewRunResult creates a new run result with a fresh run ID.
func NewRunResult() *RunResult {
	return &RunResult{
		ID:        uuid.New(),
		StartTime: time.Now(),
	}
}

// AddSuite appends a finished suite result.
func (rr *RunResult) AddSuite(result *TestSuiteResult) {
	rr.Suites = append(rr.Suites, *result)
}

// Abort marks the run as aborted. The first reason wins.
func (rr *RunResult) Abort(reason string) {
	if rr.Aborted {
		return
	}

	rr.Aborted = true
	rr.AbortReason = reason
}

// Complete finalizes the run result with total duration and returns the result for chaining.
func (rr *RunResult) Complete() *RunResult {
	rr.Duration = time.Since(rr.StartTime)
	return rr
}

// Results returns every test case result of the run, in execution order.
func (rr *RunResult) Results() []TestCaseResult {
	var results []TestCaseResult
	for i := range rr.Suites {
		results = append(results, rr.Suites[i].Results...)
	}

	return results
}

// Successful returns true iff the run did not abort and every test case passed or was skipped.
func (rr *RunResult) Successful() bool {
	if rr.Aborted {
		return false
	}

	for i := range rr.Suites {
		if rr.Suites[i].HasFailures() {
			return false
		}
	}

	return true
}

// Counts returns the number of test cases per status over the whole run.
func (rr *RunResult) Counts() Counts {
	var c Counts
	for i := range rr.Suites {
		c.merge(rr.Suites[i].Counts())
	}

	return c
}

// Counts is a tally of test case statuses.
type Counts struct {
	Passed   int
	Failed   int
	Skipped  int
	TimedOut int
	Errors   int
}

// Total returns the number of test cases counted.
func (c Counts) Total() int {
	return c.Passed + c.Failed + c.Skipped + c.TimedOut + c.Errors
}

func (c *Counts) add(s Status) {
	switch s {
	case StatusPass():
		c.Passed++
	case StatusFail():
		c.Failed++
	case StatusSkip():
		c.Skipped++
	case StatusTimeout():
		c.TimedOut++
	case StatusConfigError():
		c.Errors++
	}
}

func (c *Counts) merge(o Counts) {
	c.Passed += o.Passed
	c.Failed += o.Failed
	c.Skipped += o.Skipped
	c.TimedOut += o.TimedOut
	c.Errors += o.Errors
}
