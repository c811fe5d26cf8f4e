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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestNewTestSuiteResult(t *testing.T) {
	result := NewTestSuiteResult("suite")

	assert.Equal(t, "suite", result.Name)
	assert.Equal(t, StatusPass(), result.Status)
	assert.False(t, result.StartTime.IsZero())
	assert.Equal(t, time.Duration(0), result.Duration)
	assert.Empty(t, result.Results)
}

func TestTestSuiteResult_AddResult(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected Status
	}{
		{name: "only passes", statuses: []Status{StatusPass(), StatusPass()}, expected: StatusPass()},
		{name: "skips do not fail", statuses: []Status{StatusPass(), StatusSkip()}, expected: StatusPass()},
		{name: "a failure fails the suite", statuses: []Status{StatusPass(), StatusFail(), StatusPass()}, expected: StatusFail()},
		{name: "a timeout fails the suite", statuses: []Status{StatusTimeout()}, expected: StatusFail()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite := NewTestSuiteResult("s")

			for _, status := range tt.statuses {
				r := NewTestCaseResult("s", "c")
				r.Status = status
				suite.AddResult(r)
			}

			assert.Len(t, suite.Results, len(tt.statuses))
			assert.Equal(t, tt.expected, suite.Status)
			assert.Equal(t, tt.expected == StatusFail(), suite.HasFailures())
		})
	}
}

func TestRunResult(t *testing.T) {
	t.Run("empty run is successful", func(t *testing.T) {
		run := NewRunResult().Complete()

		assert.NotEqual(t, uuid.Nil, run.ID)
		assert.True(t, run.Successful())
		assert.Empty(t, run.Results())
		assert.Equal(t, 0, run.Counts().Total())
	})

	t.Run("counts and flattens in order", func(t *testing.T) {
		run := NewRunResult()

		s1 := NewTestSuiteResult("s1")
		s1.AddResult(NewTestCaseResult("s1", "a").Complete())
		s1.AddResult(NewTestCaseResult("s1", "b").Skip())
		run.AddSuite(s1.Complete())

		s2 := NewTestSuiteResult("s2")
		s2.AddResult(NewTestCaseResult("s2", "c").TimeOut())
		s2.AddResult(NewTestCaseResult("s2", "d").Fail(assert.AnError))
		run.AddSuite(s2.Complete())

		names := []string{}
		for _, r := range run.Results() {
			names = append(names, r.FullName())
		}

		assert.Equal(t, []string{"s1/a", "s1/b", "s2/c", "s2/d"}, names)
		assert.Equal(t, Counts{Passed: 1, Failed: 1, Skipped: 1, TimedOut: 1}, run.Counts())
		assert.Equal(t, 4, run.Counts().Total())
		assert.False(t, run.Successful())
	})

	t.Run("abort makes the run unsuccessful and keeps first reason", func(t *testing.T) {
		run := NewRunResult()
		run.Abort("fatal suite 's' failed")
		run.Abort(AbortInterrupted)

		assert.True(t, run.Aborted)
		assert.Equal(t, "fatal suite 's' failed", run.AbortReason)
		assert.False(t, run.Successful())
	})
}

func TestParseVerbosity(t *testing.T) {
	for in, want := range map[string]Verbosity{
		"":        VerbosityNormal,
		"normal":  VerbosityNormal,
		"VERBOSE": VerbosityVerbose,
		"silent":  VerbositySilent,
	} {
		got, err := ParseVerbosity(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseVerbosity("loud")
	assert.Error(t, err)
}
