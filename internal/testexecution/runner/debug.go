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

package runner

import (
	"strings"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/utils"
)

// debugPrintSuite prints the settings of a test suite.
func (r *Runner) debugPrintSuite(suite *api.TestSuite) {
	utils.DebugPrintf("Test suite '%s' (%s, fatal: %t)\n", suite.Name, r.plural.Pluralize("test case", len(suite.Tests), true), suite.Fatal)

	if suite.HasSetup() {
		utils.DebugPrintf("  - Setup: %s\n", suite.Setup)
	}

	if suite.HasTeardown() {
		utils.DebugPrintf("  - Teardown: %s\n", suite.Teardown)
	}
}

// debugPrintTestCase prints the resolved fields of a test case.
func (r *Runner) debugPrintTestCase(tc *api.TestCase) {
	utils.DebugPrintf("Test case '%s':\n", tc.Name)
	utils.DebugPrintf("  - Command: %s\n", strings.Join(tc.Command(), " "))

	if tc.HasRef() {
		utils.DebugPrintf("  - Ref: %s\n", *tc.Ref)
	}

	if tc.Stdin != "" {
		utils.DebugPrintf("  - Stdin: %d bytes\n", len(tc.Stdin))
	}

	debugPrintExpectation("Stdout", tc.Stdout, string(tc.StdoutMode))
	debugPrintExpectation("Stderr", tc.Stderr, string(tc.StderrMode))

	if tc.ExitCode != nil {
		utils.DebugPrintf("  - Exit code: %d\n", *tc.ExitCode)
	}

	if tc.HasTimeout() {
		utils.DebugPrintf("  - Timeout: %s\n", tc.Timeout)
	}
}

func debugPrintExpectation(label string, expected *string, mode string) {
	if expected == nil {
		return
	}

	utils.DebugPrintf("  - %s (%s): %q\n", label, mode, *expected)
}
