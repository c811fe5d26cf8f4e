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

import "strings"

// ConfigError reports a malformed or incomplete test file. It is fatal: no test runs when one is returned.
type ConfigError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid test file: " + e.Problems[0]
	}

	return "invalid test file:\n- " + strings.Join(e.Problems, "\n- ")
}

// NewConfigError wraps a single problem into a ConfigError.
func NewConfigError(problem string) *ConfigError {
	return &ConfigError{Problems: []string{problem}}
}
