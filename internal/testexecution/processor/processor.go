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

// Package processor loads a test file, runs it and reports the results.
package processor

import (
	"context"
	"os"
	"sort"

	"github.com/gertd/go-pluralize"
	"github.com/spf13/afero"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/report"
	"github.com/refery/refery/internal/testexecution/runner"
	testexecutionUtils "github.com/refery/refery/internal/testexecution/utils"
	"github.com/refery/refery/internal/utils"
)

// runnerInterface allows dependency injection for test runners (for production and testing).
type runnerInterface interface {
	Run(ctx context.Context) *engine.RunResult
}

// Mockable functions
//
//nolint:gochecknoglobals // Global variables for dependency injection in tests
var (
	newRunnerFunc = func(options *testexecutionUtils.Options, suites []api.TestSuite, listener runner.Listener) runnerInterface {
		return runner.NewRunner(options, suites, listener)
	}
	newListenerFunc = func(options *testexecutionUtils.Options) runner.Listener {
		return engine.NewConsolePrinter(os.Stdout, options.Verbosity, options.MaxDisplayLength)
	}
)

// ProcessTestFile loads the test file at path, runs its suites and writes the JUnit report when one is requested.
// It returns an *api.ConfigError (wrapped) when the file is invalid, in which case nothing runs,
// and ErrTestsFailed when the run was not successful.
func ProcessTestFile(ctx context.Context, fs afero.Fs, path string, options *testexecutionUtils.Options) error {
	if options.Debug {
		utils.DebugPrintf("Processing test file %s\n", path)
	}

	suites, err := Load(fs, path)
	if err != nil {
		return reportTestFileError(path, err, "invalid test file")
	}

	if options.Debug {
		debugPrintLoaded(suites)
	}

	run := newRunnerFunc(options, suites, newListenerFunc(options)).Run(ctx)

	if options.JUnitFile != "" {
		if err := report.WriteJUnit(fs, options.JUnitFile, run, path); err != nil {
			return reportError(options.JUnitFile, "failed to write JUnit report", err)
		}

		if options.Debug {
			utils.DebugPrintf("JUnit report written to %s\n", options.JUnitFile)
		}
	}

	if !run.Successful() {
		return ErrTestsFailed
	}

	return nil
}

func debugPrintLoaded(suites []api.TestSuite) {
	plural := pluralize.NewClient()

	cases := 0
	for i := range suites {
		cases += len(suites[i].Tests)
	}

	utils.DebugPrintf("Loaded %s with %s\n", plural.Pluralize("test suite", len(suites), true), plural.Pluralize("test case", cases, true))

	duplicates := api.DuplicateCaseNames(suites)

	names := make([]string, 0, len(duplicates))
	for name := range duplicates {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		utils.DebugPrintf("Test suite '%s' has duplicate test case names: %v\n", name, duplicates[name])
	}
}
