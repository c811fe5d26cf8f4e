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

// Package report writes run results as JUnit XML.
package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jstemmer/go-junit-report/v2/junit"
	"github.com/spf13/afero"

	"github.com/refery/refery/internal/engine"
)

// Property names stamped on every test suite.
const (
	PropertyRunID   = "run-id"
	PropertyAborted = "aborted"
)

// BuildJUnit converts a run into JUnit test suites. Suites the run never reached are not included.
func BuildJUnit(run *engine.RunResult, name string) junit.Testsuites {
	suites := junit.Testsuites{
		Name: name,
		Time: formatDuration(run.Duration),
	}

	for i := range run.Suites {
		suite := &run.Suites[i]

		ts := junit.Testsuite{
			Name: suite.Name,
			ID:   i,
			Time: formatDuration(suite.Duration),
		}
		ts.SetTimestamp(suite.StartTime)
		ts.AddProperty(PropertyRunID, run.ID.String())
		ts.AddProperty(PropertyAborted, strconv.FormatBool(run.Aborted))

		for j := range suite.Results {
			ts.AddTestcase(buildTestcase(&suite.Results[j]))
		}

		suites.AddSuite(ts)
	}

	return suites
}

func buildTestcase(result *engine.TestCaseResult) junit.Testcase {
	tc := junit.Testcase{
		Name:      result.Name,
		Classname: result.SuiteName + "." + result.Name,
		Time:      formatDuration(result.Duration),
		Status:    result.Status.Value,
	}

	switch result.Status {
	case engine.StatusSkip():
		tc.Skipped = &junit.Result{Message: "skipped"}
	case engine.StatusTimeout():
		tc.Failure = &junit.Result{Message: "timed out", Type: "timeout", Data: failureDetails(result)}
	case engine.StatusFail():
		tc.Failure = &junit.Result{Message: failureMessage(result), Type: failureType(result), Data: failureDetails(result)}
	case engine.StatusConfigError():
		tc.Error = &junit.Result{Message: failureMessage(result), Type: "config", Data: failureDetails(result)}
	}

	if result.Execution != nil {
		if out := result.Execution.Subject.Stdout; len(out) > 0 {
			tc.SystemOut = &junit.Output{Data: sanitize(out)}
		}

		if out := result.Execution.Subject.Stderr; len(out) > 0 {
			tc.SystemErr = &junit.Output{Data: sanitize(out)}
		}
	}

	return tc
}

func failureType(result *engine.TestCaseResult) string {
	if result.Error != nil {
		return "error"
	}

	return "mismatch"
}

func failureMessage(result *engine.TestCaseResult) string {
	if result.Error != nil {
		return result.Error.Error()
	}

	summaries := make([]string, 0, len(result.Mismatches))
	for _, m := range result.Mismatches {
		summaries = append(summaries, m.Summary())
	}

	return strings.Join(summaries, "; ")
}

func failureDetails(result *engine.TestCaseResult) string {
	var b strings.Builder

	if result.Execution != nil {
		fmt.Fprintf(&b, "$ %s\n", result.Execution.Subject.CommandLine())
	}

	if result.Error != nil {
		fmt.Fprintf(&b, "%v\n", result.Error)
	}

	for _, m := range result.Mismatches {
		fmt.Fprintf(&b, "%s\n", m.Summary())

		if m.Dimension != engine.DimensionExitCode {
			fmt.Fprintf(&b, "expected: %q\nactual:   %q\n", m.Expected, m.Actual)
		}
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}

	return sanitize([]byte(b.String()))
}

// WriteJUnit writes the JUnit XML report of a run to path, creating parent directories.
func WriteJUnit(fs afero.Fs, path string, run *engine.RunResult, name string) error {
	suites := BuildJUnit(run, name)

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")

	if err := suites.WriteXML(&buf); err != nil {
		return fmt.Errorf("failed to encode JUnit report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory for JUnit report %s: %w", path, err)
		}
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // reports are meant to be read by CI tooling
		return fmt.Errorf("failed to write JUnit report %s: %w", path, err)
	}

	return nil
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

// sanitize replaces characters that XML 1.0 cannot carry, including invalid UTF-8.
func sanitize(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r == 0x09 || r == 0x0A || r == 0x0D ||
			r >= 0x20 && r <= 0xD7FF ||
			r >= 0xE000 && r <= 0xFFFD ||
			r >= 0x10000 && r <= 0x10FFFF {
			return r
		}

		return '\uFFFD'
	}, string(data))
}
