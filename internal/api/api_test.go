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

package api

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing
)

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func modePtr(m OutputMode) *OutputMode {
	return &m
}

func durationPtr(d time.Duration) *Duration {
	v := Duration(d)
	return &v
}

func TestCaseSpec_MergeDefault(t *testing.T) {
	tests := []struct {
		name     string
		literal  CaseSpec
		defaults CaseSpec
		expected CaseSpec
	}{
		{
			name:     "empty default leaves case unchanged",
			literal:  CaseSpec{Name: strPtr("a"), Binary: strPtr("/bin/echo"), Args: []string{"x"}},
			defaults: CaseSpec{},
			expected: CaseSpec{Name: strPtr("a"), Binary: strPtr("/bin/echo"), Args: []string{"x"}},
		},
		{
			name:     "missing fields come from default",
			literal:  CaseSpec{Name: strPtr("a")},
			defaults: CaseSpec{Binary: strPtr("/bin/echo"), Stdout: strPtr("\n"), ExitCode: intPtr(0)},
			expected: CaseSpec{Name: strPtr("a"), Binary: strPtr("/bin/echo"), Stdout: strPtr("\n"), ExitCode: intPtr(0)},
		},
		{
			name:     "case wins over default",
			literal:  CaseSpec{Name: strPtr("a"), ExitCode: intPtr(3), StdoutMode: modePtr(OutputModeExists)},
			defaults: CaseSpec{Name: strPtr("d"), ExitCode: intPtr(0), StdoutMode: modePtr(OutputModeStrict)},
			expected: CaseSpec{Name: strPtr("a"), ExitCode: intPtr(3), StdoutMode: modePtr(OutputModeExists)},
		},
		{
			name:     "explicitly empty args override default args",
			literal:  CaseSpec{Args: []string{}},
			defaults: CaseSpec{Args: []string{"-v"}},
			expected: CaseSpec{Args: []string{}},
		},
		{
			name:     "default args used when case has none",
			literal:  CaseSpec{},
			defaults: CaseSpec{Args: []string{"-v"}},
			expected: CaseSpec{Args: []string{"-v"}},
		},
		{
			name:     "empty expected output is a value, not an absence",
			literal:  CaseSpec{Stdout: strPtr("")},
			defaults: CaseSpec{Stdout: strPtr("hello\n")},
			expected: CaseSpec{Stdout: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.literal.MergeDefault(tt.defaults)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("MergeDefault() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCaseSpec_MergeDefaultDoesNotAlias(t *testing.T) {
	defaults := CaseSpec{Args: []string{"-v"}}
	merged := CaseSpec{}.MergeDefault(defaults)

	merged.Args[0] = "changed"

	assert.Equal(t, "-v", defaults.Args[0])
}

func TestResolve(t *testing.T) {
	defaults := CaseSpec{
		Binary:  strPtr("/bin/echo"),
		Ref:     strPtr("/usr/bin/echo"),
		Timeout: durationPtr(2 * time.Second),
	}
	suites := []SuiteSpec{
		{
			Name:     "s1",
			Setup:    strPtr("mkdir -p /tmp/x"),
			Teardown: strPtr("rm -rf /tmp/x"),
			Fatal:    boolPtr(true),
			Tests: []CaseSpec{
				{Name: strPtr("hello"), Args: []string{"hello"}},
				{Name: strPtr("other"), Binary: strPtr("/bin/cat"), Stdin: strPtr("in"), Skipped: boolPtr(true), StderrMode: modePtr(OutputModeExists)},
			},
		},
		{Name: "s2"},
	}

	resolved, err := Resolve(defaults, suites)
	require.NoError(t, err)

	expected := []TestSuite{
		{
			Name:     "s1",
			Setup:    "mkdir -p /tmp/x",
			Teardown: "rm -rf /tmp/x",
			Fatal:    true,
			Tests: []TestCase{
				{
					Name:       "hello",
					Binary:     "/bin/echo",
					Args:       []string{"hello"},
					Ref:        strPtr("/usr/bin/echo"),
					Timeout:    2 * time.Second,
					StdoutMode: OutputModeStrict,
					StderrMode: OutputModeStrict,
				},
				{
					Name:       "other",
					Binary:     "/bin/cat",
					Args:       []string{},
					Ref:        strPtr("/usr/bin/echo"),
					Stdin:      "in",
					Skipped:    true,
					Timeout:    2 * time.Second,
					StdoutMode: OutputModeStrict,
					StderrMode: OutputModeExists,
				},
			},
		},
		{Name: "s2", Tests: []TestCase{}},
	}

	if diff := cmp.Diff(expected, resolved); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, resolved[0].HasSetup())
	assert.True(t, resolved[0].HasTeardown())
	assert.False(t, resolved[1].HasSetup())
	assert.True(t, resolved[0].Tests[0].HasRef())
	assert.True(t, resolved[0].Tests[0].HasTimeout())
	assert.Equal(t, []string{"/bin/echo", "hello"}, resolved[0].Tests[0].Command())
}

func TestResolve_EmptyDefaultIsIdentity(t *testing.T) {
	suites := []SuiteSpec{{
		Name:  "s",
		Tests: []CaseSpec{{Name: strPtr("c"), Binary: strPtr("/bin/true"), Stdout: strPtr("")}},
	}}

	resolved, err := Resolve(CaseSpec{}, suites)
	require.NoError(t, err)
	require.Len(t, resolved[0].Tests, 1)

	tc := resolved[0].Tests[0]
	assert.Equal(t, "c", tc.Name)
	assert.Equal(t, "/bin/true", tc.Binary)
	assert.Nil(t, tc.Ref)
	assert.Nil(t, tc.Stderr)
	assert.Nil(t, tc.ExitCode)
	require.NotNil(t, tc.Stdout)
	assert.Empty(t, *tc.Stdout)
	assert.False(t, tc.HasTimeout())
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		defaults CaseSpec
		suites   []SuiteSpec
		problems []string
	}{
		{
			name:   "missing binary everywhere",
			suites: []SuiteSpec{{Name: "s", Tests: []CaseSpec{{Name: strPtr("c")}}}},
			problems: []string{
				"testsuite 's', test case 'c': missing mandatory field: binary (it can be specified either in the test case or in the default mapping)",
			},
		},
		{
			name:     "missing case name",
			defaults: CaseSpec{Binary: strPtr("/bin/true")},
			suites:   []SuiteSpec{{Name: "s", Tests: []CaseSpec{{}}}},
			problems: []string{"testsuite 's', tests[0]: missing mandatory field: name"},
		},
		{
			name:     "missing suite name and all problems collected",
			defaults: CaseSpec{Binary: strPtr("/bin/true")},
			suites: []SuiteSpec{
				{Tests: []CaseSpec{{Name: strPtr("ok")}}},
				{Name: "s", Tests: []CaseSpec{{Name: strPtr("c"), Binary: strPtr(" ")}}},
			},
			problems: []string{
				"testsuites[0]: missing mandatory field: name",
				"testsuite 's', test case 'c': missing mandatory field: binary (it can be specified either in the test case or in the default mapping)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(tt.defaults, tt.suites)
			require.Error(t, err)
			assert.Nil(t, resolved)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.problems, cfgErr.Problems)
		})
	}
}

func TestTestFile_Resolve(t *testing.T) {
	t.Run("missing testsuites key", func(t *testing.T) {
		tf := TestFile{}
		_, err := tf.Resolve()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing mandatory field: testsuites")
	})

	t.Run("empty testsuites list", func(t *testing.T) {
		tf := TestFile{TestSuites: []SuiteSpec{}}
		resolved, err := tf.Resolve()
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}

func TestDuplicateCaseNames(t *testing.T) {
	suites := []TestSuite{
		{Name: "a", Tests: []TestCase{{Name: "x"}, {Name: "y"}, {Name: "x"}, {Name: "x"}}},
		{Name: "b", Tests: []TestCase{{Name: "x"}, {Name: "y"}}},
	}

	assert.Equal(t, map[string][]string{"a": {"x"}}, DuplicateCaseNames(suites))
}

func TestConfigError(t *testing.T) {
	assert.Equal(t, "invalid test file: boom", NewConfigError("boom").Error())
	assert.Equal(t, "invalid test file:\n- a\n- b", (&ConfigError{Problems: []string{"a", "b"}}).Error())
}
