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

package processor

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing

	"github.com/refery/refery/internal/api"
)

const testFileYAML = "/tests.yaml"

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testFileYAML, []byte(`
default:
  binary: ./echo.sh
  timeout: 1.5
  stdout_mode: Exists
testsuites:
  - name: s1
    setup: mkdir -p out
    fatal: true
    tests:
      - name: t1
        args: [hi]
        stdout: "hi\n"
        exit_code: 0
      - name: t2
        binary: ./other.sh
        args: []
        timeout: 250ms
        skipped: true
  - name: empty
`), 0o600))

	suites, err := Load(fs, testFileYAML)
	require.NoError(t, err)
	require.Len(t, suites, 2)

	s1 := suites[0]
	assert.Equal(t, "s1", s1.Name)
	assert.Equal(t, "mkdir -p out", s1.Setup)
	assert.True(t, s1.Fatal)
	require.Len(t, s1.Tests, 2)

	t1 := s1.Tests[0]
	assert.Equal(t, "./echo.sh", t1.Binary)
	assert.Equal(t, []string{"hi"}, t1.Args)
	assert.Equal(t, "hi\n", *t1.Stdout)
	assert.Equal(t, 0, *t1.ExitCode)
	assert.Equal(t, 1500*time.Millisecond, t1.Timeout)
	assert.Equal(t, api.OutputModeExists, t1.StdoutMode)
	assert.Equal(t, api.OutputModeStrict, t1.StderrMode)

	t2 := s1.Tests[1]
	assert.Equal(t, "./other.sh", t2.Binary)
	assert.Empty(t, t2.Args)
	assert.Equal(t, 250*time.Millisecond, t2.Timeout)
	assert.True(t, t2.Skipped)

	assert.Empty(t, suites[1].Tests)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		configError bool
		contains    string
	}{
		{
			name:        "invalid YAML",
			content:     "testsuites: [\n",
			configError: true,
			contains:    "invalid YAML",
		},
		{
			name:        "top-level list",
			content:     "- name: s\n",
			configError: true,
			contains:    "invalid YAML",
		},
		{
			name:        "missing testsuites",
			content:     "default:\n  binary: ./x\n",
			configError: true,
			contains:    "missing mandatory field: testsuites",
		},
		{
			name:        "unknown key",
			content:     "testsuites:\n  - name: s\n    tests:\n      - name: c\n        binary: ./x\n        stdot: typo\n",
			configError: true,
			contains:    "stdot",
		},
		{
			name:        "invalid mode",
			content:     "testsuites:\n  - name: s\n    tests:\n      - name: c\n        binary: ./x\n        stdout_mode: fuzzy\n",
			configError: true,
			contains:    "invalid output mode",
		},
		{
			name:        "negative timeout",
			content:     "testsuites:\n  - name: s\n    tests:\n      - name: c\n        binary: ./x\n        timeout: -1\n",
			configError: true,
			contains:    "must not be negative",
		},
		{
			name:        "missing binary",
			content:     "testsuites:\n  - name: s\n    tests:\n      - name: c\n",
			configError: true,
			contains:    "missing mandatory field: binary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, testFileYAML, []byte(tt.content), 0o600))

			suites, err := Load(fs, testFileYAML)
			require.Error(t, err)
			assert.Nil(t, suites)
			assert.Equal(t, tt.configError, IsConfigError(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("missing file is not a config error", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
		require.Error(t, err)
		assert.False(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "failed to read test file /nope.yaml")
	})
}

func TestLoad_EmptySuiteList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testFileYAML, []byte("testsuites: []\n"), 0o600))

	suites, err := Load(fs, testFileYAML)
	require.NoError(t, err)
	assert.Empty(t, suites)
}
