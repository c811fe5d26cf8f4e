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

// Package api provides the test file types, the resolution of defaults into test cases, and their validation.
package api

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TestFile represents the structure of a refery test file.
type TestFile struct {
	Default    CaseSpec    `json:"default,omitempty"`
	TestSuites []SuiteSpec `json:"testsuites"`
}

// SuiteSpec is a test suite as written in the test file.
type SuiteSpec struct {
	Name     string     `json:"name"`            // Mandatory descriptive name
	Tests    []CaseSpec `json:"tests,omitempty"` // Test cases, run in order
	Setup    *string    `json:"setup,omitempty"    jsonschema:"description=Shell command run before each test case"`
	Teardown *string    `json:"teardown,omitempty" jsonschema:"description=Shell command run after each test case"`
	Fatal    *bool      `json:"fatal,omitempty"    jsonschema:"description=Abort the whole run when a test case of this suite fails"`
}

// CaseSpec is a test case as written in the test file. Every field is optional so the
// same type also describes the default mapping; nil means "not specified".
type CaseSpec struct {
	Name       *string     `json:"name,omitempty"`
	Binary     *string     `json:"binary,omitempty"      jsonschema:"description=Path to the tested executable"`
	Args       []string    `json:"args,omitempty"        jsonschema:"description=Arguments passed to the executables"`
	Ref        *string     `json:"ref,omitempty"         jsonschema:"description=Reference executable supplying the expectations not given explicitly"`
	Stdin      *string     `json:"stdin,omitempty"`
	Stdout     *string     `json:"stdout,omitempty"      jsonschema:"description=Expected standard output"`
	Stderr     *string     `json:"stderr,omitempty"      jsonschema:"description=Expected standard error"`
	ExitCode   *int        `json:"exit_code,omitempty"   jsonschema:"description=Expected exit code"`
	Skipped    *bool       `json:"skipped,omitempty"`
	Timeout    *Duration   `json:"timeout,omitempty"`
	StdoutMode *OutputMode `json:"stdout_mode,omitempty"`
	StderrMode *OutputMode `json:"stderr_mode,omitempty"`
}

// TestSuite is a resolved test suite, ready to be run. It is never modified once resolved.
type TestSuite struct {
	Name     string
	Tests    []TestCase
	Setup    string
	Teardown string
	Fatal    bool
}

// TestCase is a resolved test case: the literal case merged with the default mapping.
// Optional expectations stay nil when neither level specifies them.
type TestCase struct {
	Name       string
	Binary     string
	Args       []string
	Ref        *string
	Stdin      string
	Stdout     *string
	Stderr     *string
	ExitCode   *int
	Skipped    bool
	Timeout    time.Duration // 0 means no timeout
	StdoutMode OutputMode
	StderrMode OutputMode
}

// HasSetup returns true if the suite defines a setup command.
func (s *TestSuite) HasSetup() bool {
	return s.Setup != ""
}

// HasTeardown returns true if the suite defines a teardown command.
func (s *TestSuite) HasTeardown() bool {
	return s.Teardown != ""
}

// HasRef returns true if the test case uses a reference executable.
func (tc *TestCase) HasRef() bool {
	return tc.Ref != nil
}

// HasTimeout returns true if the test case processes are bounded by a timeout.
func (tc *TestCase) HasTimeout() bool {
	return tc.Timeout > 0
}

// Command returns the argv of the tested executable.
func (tc *TestCase) Command() []string {
	return append([]string{tc.Binary}, tc.Args...)
}

// pick returns the first non-nil value.
func pick[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

// MergeDefault returns a copy of the case where every field left unspecified is taken from defaults.
// Fields are merged independently of each other; the receiver is not modified.
func (c CaseSpec) MergeDefault(defaults CaseSpec) CaseSpec {
	merged := CaseSpec{
		Name:       pick(c.Name, defaults.Name),
		Binary:     pick(c.Binary, defaults.Binary),
		Ref:        pick(c.Ref, defaults.Ref),
		Stdin:      pick(c.Stdin, defaults.Stdin),
		Stdout:     pick(c.Stdout, defaults.Stdout),
		Stderr:     pick(c.Stderr, defaults.Stderr),
		ExitCode:   pick(c.ExitCode, defaults.ExitCode),
		Skipped:    pick(c.Skipped, defaults.Skipped),
		Timeout:    pick(c.Timeout, defaults.Timeout),
		StdoutMode: pick(c.StdoutMode, defaults.StdoutMode),
		StderrMode: pick(c.StderrMode, defaults.StderrMode),
	}

	switch {
	case c.Args != nil:
		merged.Args = slices.Clone(c.Args)
	case defaults.Args != nil:
		merged.Args = slices.Clone(defaults.Args)
	}

	return merged
}

// CheckMandatoryFields checks the fields a case must have once merged with the default mapping.
func (c *CaseSpec) CheckMandatoryFields() []string {
	var problems []string

	if c.Name == nil || strings.TrimSpace(*c.Name) == "" {
		problems = append(problems, "missing mandatory field: name")
	}

	if c.Binary == nil || strings.TrimSpace(*c.Binary) == "" {
		problems = append(problems, "missing mandatory field: binary (it can be specified either in the test case or in the default mapping)")
	}

	return problems
}

// resolve turns a merged case into an immutable TestCase, applying built-in defaults.
func (c *CaseSpec) resolve() TestCase {
	tc := TestCase{
		Name:       deref(c.Name),
		Binary:     deref(c.Binary),
		Args:       slices.Clone(c.Args),
		Ref:        clonePtr(c.Ref),
		Stdin:      deref(c.Stdin),
		Stdout:     clonePtr(c.Stdout),
		Stderr:     clonePtr(c.Stderr),
		ExitCode:   clonePtr(c.ExitCode),
		Skipped:    deref(c.Skipped),
		StdoutMode: OutputModeStrict,
		StderrMode: OutputModeStrict,
	}

	if tc.Args == nil {
		tc.Args = []string{}
	}

	if c.Timeout != nil {
		tc.Timeout = time.Duration(*c.Timeout)
	}

	if c.StdoutMode != nil {
		tc.StdoutMode = *c.StdoutMode
	}

	if c.StderrMode != nil {
		tc.StderrMode = *c.StderrMode
	}

	return tc
}

// Resolve merges the default mapping into every case of every suite and returns the resolved suites,
// preserving declaration order. All problems found are reported together in a single ConfigError.
func Resolve(defaults CaseSpec, suites []SuiteSpec) ([]TestSuite, error) {
	var problems []string

	resolved := make([]TestSuite, 0, len(suites))

	for i, spec := range suites {
		suiteLabel := fmt.Sprintf("testsuites[%d]", i)
		if strings.TrimSpace(spec.Name) == "" {
			problems = append(problems, fmt.Sprintf("%s: missing mandatory field: name", suiteLabel))
		} else {
			suiteLabel = fmt.Sprintf("testsuite '%s'", spec.Name)
		}

		suite := TestSuite{
			Name:     spec.Name,
			Tests:    make([]TestCase, 0, len(spec.Tests)),
			Setup:    deref(spec.Setup),
			Teardown: deref(spec.Teardown),
			Fatal:    deref(spec.Fatal),
		}

		for j, literal := range spec.Tests {
			merged := literal.MergeDefault(defaults)

			caseLabel := fmt.Sprintf("tests[%d]", j)
			if merged.Name != nil && *merged.Name != "" {
				caseLabel = fmt.Sprintf("test case '%s'", *merged.Name)
			}

			for _, problem := range merged.CheckMandatoryFields() {
				problems = append(problems, fmt.Sprintf("%s, %s: %s", suiteLabel, caseLabel, problem))
			}

			suite.Tests = append(suite.Tests, merged.resolve())
		}

		resolved = append(resolved, suite)
	}

	if len(problems) > 0 {
		return nil, &ConfigError{Problems: problems}
	}

	return resolved, nil
}

// Resolve resolves the suites of the test file against its default mapping.
func (tf *TestFile) Resolve() ([]TestSuite, error) {
	if tf.TestSuites == nil {
		return nil, &ConfigError{Problems: []string{"missing mandatory field: testsuites"}}
	}

	return Resolve(tf.Default, tf.TestSuites)
}

// DuplicateCaseNames returns, per suite name, the case names used more than once.
// Names are only advisory identifiers, so duplicates are not an error.
func DuplicateCaseNames(suites []TestSuite) map[string][]string {
	duplicates := make(map[string][]string)

	for _, suite := range suites {
		seen := make(map[string]bool, len(suite.Tests))

		for _, tc := range suite.Tests {
			if seen[tc.Name] && !slices.Contains(duplicates[suite.Name], tc.Name) {
				duplicates[suite.Name] = append(duplicates[suite.Name], tc.Name)
			}

			seen[tc.Name] = true
		}
	}

	return duplicates
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
