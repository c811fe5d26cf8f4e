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

// Package comparator decides the outcome of a test case from what its processes did.
package comparator

import (
	"bytes"
	"strconv"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/engine"
)

// Outcome is the verdict on a test case.
type Outcome struct {
	Status     engine.Status
	Mismatches []engine.Mismatch
}

// Compare checks the subject's stdout, stderr and exit code against their effective expectations.
// The effective expectation of a dimension is the case's explicit value if set, else the value observed
// on the reference when the case has one. A dimension without expectation always passes.
// A timed-out subject is TimedOut and is not compared.
func Compare(tc *api.TestCase, ref, subject *engine.ExecutionResult) Outcome {
	if subject.TimedOut {
		return Outcome{Status: engine.StatusTimeout()}
	}

	if !tc.HasRef() {
		ref = nil
	}

	var mismatches []engine.Mismatch

	if m := compareStream(engine.DimensionStdout, tc.StdoutMode, tc.Stdout, ref, subject.Stdout, func(r *engine.ExecutionResult) []byte { return r.Stdout }); m != nil {
		mismatches = append(mismatches, *m)
	}

	if m := compareStream(engine.DimensionStderr, tc.StderrMode, tc.Stderr, ref, subject.Stderr, func(r *engine.ExecutionResult) []byte { return r.Stderr }); m != nil {
		mismatches = append(mismatches, *m)
	}

	if m := compareExitCode(tc.ExitCode, ref, subject.ExitCode); m != nil {
		mismatches = append(mismatches, *m)
	}

	if len(mismatches) > 0 {
		return Outcome{Status: engine.StatusFail(), Mismatches: mismatches}
	}

	return Outcome{Status: engine.StatusPass()}
}

// StreamMatches reports whether actual satisfies expected under mode.
func StreamMatches(mode api.OutputMode, expected, actual []byte) bool {
	if mode == api.OutputModeExists {
		return (len(expected) > 0) == (len(actual) > 0)
	}

	return bytes.Equal(expected, actual)
}

func compareStream(
	dimension engine.Dimension,
	mode api.OutputMode,
	explicit *string,
	ref *engine.ExecutionResult,
	actual []byte,
	observed func(*engine.ExecutionResult) []byte,
) *engine.Mismatch {
	var (
		expected []byte
		source   engine.ExpectationSource
	)

	switch {
	case explicit != nil:
		expected, source = []byte(*explicit), engine.SourceExplicit
	case ref != nil:
		expected, source = observed(ref), engine.SourceRef
	default:
		return nil
	}

	if mode == "" {
		mode = api.OutputModeStrict
	}

	if StreamMatches(mode, expected, actual) {
		return nil
	}

	return &engine.Mismatch{
		Dimension: dimension,
		Mode:      mode,
		Source:    source,
		Expected:  string(expected),
		Actual:    string(actual),
	}
}

func compareExitCode(explicit *int, ref *engine.ExecutionResult, actual int) *engine.Mismatch {
	var (
		expected int
		source   engine.ExpectationSource
	)

	switch {
	case explicit != nil:
		expected, source = *explicit, engine.SourceExplicit
	case ref != nil:
		expected, source = ref.ExitCode, engine.SourceRef
	default:
		return nil
	}

	if expected == actual {
		return nil
	}

	return &engine.Mismatch{
		Dimension: engine.DimensionExitCode,
		Source:    source,
		Expected:  strconv.Itoa(expected),
		Actual:    strconv.Itoa(actual),
	}
}
