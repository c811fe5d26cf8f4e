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

// Package utils from internal/unittests provides helper functions for unit tests.
package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTestFile writes content to a file, creating parent directories if needed.
func WriteTestFile(t *testing.T, path, content string) string {
	t.Helper()

	CreateTestDir(t, filepath.Dir(path), 0o750)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}

	return path
}

// WriteScript writes an executable /bin/sh script with the given body into dir and returns its path.
// Example:
//
//	echo := testutils.WriteScript(t, dir, "echo.sh", `echo "$@"`)
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	CreateTestDir(t, dir, 0o750)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700); err != nil { //nolint:gosec // test scripts must be executable
		t.Fatalf("Failed to write script %s: %v", path, err)
	}

	return path
}

// CreateTestDir creates a directory at the specified path, including any necessary parent
// directories. It does not register for automatic cleanup.
func CreateTestDir(t *testing.T, path string, perm os.FileMode) string {
	t.Helper()

	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}
