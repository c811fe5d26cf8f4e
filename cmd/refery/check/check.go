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

// Package check provides the check subcommand for the refery tool.
package check

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gertd/go-pluralize"
	"github.com/spf13/afero"

	"github.com/refery/refery/internal/api"
	configtypes "github.com/refery/refery/internal/config"
	"github.com/refery/refery/internal/testexecution/processor"
	testexecutionUtils "github.com/refery/refery/internal/testexecution/utils"
	"github.com/refery/refery/internal/utils"
)

// Cmd represents the check subcommand.
type Cmd struct {
	TestFile   string              `help:"Path to the YAML test file" required:"" short:"f" type:"existingfile"`
	Config     *configtypes.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
	Debug      bool                `kong:"-"`
	fs         afero.Fs
}

// executable is a binary or ref path referenced by at least one test case.
type executable struct {
	path     string
	resolved string
	usedBy   string // first test case referencing the path
	err      error
}

// AfterApply implements kong.AfterApply.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the check subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	if c.ConfigPath == "" {
		utils.OutputPrintf("No configuration file provided, using defaults\n")
	} else {
		utils.OutputPrintf("Configuration file: %s\n", c.ConfigPath)
	}

	utils.OutputPrintf("Test file: %s\n\n", c.TestFile)

	suites, err := processor.Load(c.fs, c.TestFile)
	if err != nil {
		return fmt.Errorf("%s: %w", c.TestFile, err)
	}

	// combine all error messages
	var allErrors []string

	if c.Config != nil {
		if err := configtypes.CheckDependency(c.Config.Shell); err != nil {
			allErrors = append(allErrors, fmt.Sprintf("shell: %v", err))
		}
	}

	executables := collectExecutables(suites)
	for _, e := range executables {
		if c.Debug {
			utils.DebugPrintf("Checking %s (first used by %s)\n", e.path, e.usedBy)
		}

		if e.err != nil {
			allErrors = append(allErrors, fmt.Sprintf("%s: %v", e.usedBy, e.err))
		}
	}

	if len(allErrors) > 0 {
		return fmt.Errorf("check failed:\n%s", strings.Join(allErrors, "\n"))
	}

	utils.OutputPrintf("Check successful\n")

	plural := pluralize.NewClient()

	utils.OutputPrintf("\nTest suites:\n")

	for i := range suites {
		skipped := 0

		for j := range suites[i].Tests {
			if suites[i].Tests[j].Skipped {
				skipped++
			}
		}

		utils.OutputPrintf("- %s: %s (%d skipped)\n", suites[i].Name, plural.Pluralize("test case", len(suites[i].Tests), true), skipped)
	}

	if len(executables) > 0 {
		utils.OutputPrintf("\nExecutables:\n")

		for _, e := range executables {
			utils.OutputPrintf("- %s: %s\n", e.path, e.resolved)
		}
	}

	if duplicates := api.DuplicateCaseNames(suites); len(duplicates) > 0 {
		utils.OutputPrintf("\n")

		for i := range suites {
			if names, ok := duplicates[suites[i].Name]; ok {
				utils.WarningPrintf("test suite '%s' has duplicate test case names: %s\n", suites[i].Name, strings.Join(names, ", "))
			}
		}
	}

	return nil
}

// collectExecutables returns every distinct binary and ref of the non-skipped test cases, in order of first use.
func collectExecutables(suites []api.TestSuite) []*executable {
	var (
		ordered []*executable
		seen    = map[string]bool{}
	)

	add := func(path, usedBy string) {
		if seen[path] {
			return
		}

		seen[path] = true
		resolved, err := testexecutionUtils.ResolveCommandPath(path)
		ordered = append(ordered, &executable{path: path, resolved: resolved, usedBy: usedBy, err: err})
	}

	for i := range suites {
		for j := range suites[i].Tests {
			tc := &suites[i].Tests[j]
			if tc.Skipped {
				continue
			}

			usedBy := fmt.Sprintf("testsuite '%s', test case '%s'", suites[i].Name, tc.Name)
			add(tc.Binary, usedBy+", binary")

			if tc.HasRef() {
				add(*tc.Ref, usedBy+", ref")
			}
		}
	}

	return ordered
}
