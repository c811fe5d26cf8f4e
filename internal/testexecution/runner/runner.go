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

// Package runner runs resolved test suites in order and collects their results.
package runner

import (
	"context"
	"fmt"

	"github.com/gertd/go-pluralize"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/testexecution/comparator"
	"github.com/refery/refery/internal/testexecution/executor"
	testexecutionUtils "github.com/refery/refery/internal/testexecution/utils"
	"github.com/refery/refery/internal/utils"
)

// Listener is notified of run progress. Calls happen in execution order from the runner's goroutine.
type Listener interface {
	SuiteStarted(suite *api.TestSuite)
	CaseFinished(result *engine.TestCaseResult)
	SuiteFinished(result *engine.TestSuiteResult)
	RunFinished(result *engine.RunResult)
}

type nopListener struct{}

func (nopListener) SuiteStarted(*api.TestSuite)           {}
func (nopListener) CaseFinished(*engine.TestCaseResult)   {}
func (nopListener) SuiteFinished(*engine.TestSuiteResult) {}
func (nopListener) RunFinished(*engine.RunResult)         {}

// Runner handles test execution.
type Runner struct {
	*testexecutionUtils.Options

	suites   []api.TestSuite
	listener Listener
	plural   *pluralize.Client
	hooks    *hookExecutor
	// Mockable function fields
	executeCaseFunc func(ctx context.Context, tc *api.TestCase) engine.CaseExecution
	runCommand      func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

// NewRunner creates a new test runner. A nil listener is allowed.
func NewRunner(options *testexecutionUtils.Options, suites []api.TestSuite, listener Listener) *Runner {
	if listener == nil {
		listener = nopListener{}
	}

	r := &Runner{
		Options:    options,
		suites:     suites,
		listener:   listener,
		plural:     pluralize.NewClient(),
		runCommand: runCommand,
	}

	r.executeCaseFunc = executor.New(options.Debug).Execute
	r.hooks = newHookExecutor(options.HookShell(), options.Debug, func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return r.runCommand(ctx, name, args...)
	})

	return r
}

// Run runs every suite in declaration order and returns the state of the run once it stops.
// A failing case of a fatal suite, or the cancellation of ctx, aborts the run: nothing else is scheduled
// and the results produced so far are kept.
func (r *Runner) Run(ctx context.Context) *engine.RunResult {
	run := engine.NewRunResult()

	if r.Debug {
		utils.DebugPrintf("Run %s: %s\n", run.ID, r.plural.Pluralize("test suite", len(r.suites), true))
	}

	for i := range r.suites {
		if ctx.Err() != nil {
			run.Abort(engine.AbortInterrupted)
			break
		}

		suiteResult, abortReason := r.runSuite(ctx, &r.suites[i])
		run.AddSuite(suiteResult)

		if abortReason != "" {
			run.Abort(abortReason)
			break
		}
	}

	run.Complete()

	if r.Debug && run.Aborted {
		utils.DebugPrintf("Run %s aborted: %s\n", run.ID, run.AbortReason)
	}

	r.listener.RunFinished(run)

	return run
}

// runSuite runs the cases of a suite in order. A non-empty abort reason stops the whole run.
func (r *Runner) runSuite(ctx context.Context, suite *api.TestSuite) (*engine.TestSuiteResult, string) {
	if r.Debug {
		r.debugPrintSuite(suite)
	}

	r.listener.SuiteStarted(suite)

	suiteResult := engine.NewTestSuiteResult(suite.Name)

	var abortReason string

	for j := range suite.Tests {
		if ctx.Err() != nil {
			abortReason = engine.AbortInterrupted
			break
		}

		result := r.runTestCase(ctx, suite, &suite.Tests[j])
		suiteResult.AddResult(result)
		r.listener.CaseFinished(result)

		if ctx.Err() != nil {
			abortReason = engine.AbortInterrupted
			break
		}

		if suite.Fatal && result.Status.IsFailure() {
			abortReason = fmt.Sprintf("test case '%s' of fatal test suite '%s' did not pass", result.Name, suite.Name)
			break
		}
	}

	suiteResult.Complete()
	r.listener.SuiteFinished(suiteResult)

	return suiteResult, abortReason
}

// runTestCase runs a single test case between the suite's setup and teardown commands.
// Skipped cases run nothing, hooks included.
func (r *Runner) runTestCase(ctx context.Context, suite *api.TestSuite, tc *api.TestCase) *engine.TestCaseResult {
	result := engine.NewTestCaseResult(suite.Name, tc.Name)

	if tc.Skipped {
		if r.Debug {
			utils.DebugPrintf("Skipping test case '%s'\n", tc.Name)
		}

		return result.Skip()
	}

	if r.Debug {
		r.debugPrintTestCase(tc)
	}

	var setupErr error

	if suite.HasSetup() {
		setup := r.hooks.executeHook(ctx, engine.HookSetup, suite.Setup)
		result.Setup = &setup

		if setup.Failed() {
			setupErr = setup.Error
		}
	}

	// The case still runs after a failed setup, but the setup failure decides its status.
	execution := r.executeCaseFunc(ctx, tc)
	result.Execution = &execution

	if setupErr != nil {
		result.Fail(setupErr)
	} else {
		evaluate(tc, result)
	}

	if suite.HasTeardown() {
		// Teardown still runs when the run is being interrupted.
		teardown := r.hooks.executeHook(context.WithoutCancel(ctx), engine.HookTeardown, suite.Teardown)
		result.Teardown = &teardown

		if teardown.Failed() {
			result.AddWarning("%v", teardown.Error)
		}
	}

	return result.Complete()
}

// evaluate sets the status of a test case from its execution.
func evaluate(tc *api.TestCase, result *engine.TestCaseResult) {
	subject := &result.Execution.Subject
	ref := result.Execution.Reference

	switch {
	case subject.Err != nil:
		result.Fail(subject.Err)
		return
	case subject.TimedOut:
		result.TimeOut()
		return
	case ref != nil && ref.Err != nil:
		result.Fail(fmt.Errorf("reference: %w", ref.Err))
		return
	case ref != nil && ref.TimedOut:
		result.Error = fmt.Errorf("reference %s timed out after %s", ref.Command[0], tc.Timeout)
		result.TimeOut()

		return
	}

	outcome := comparator.Compare(tc, ref, subject)

	switch outcome.Status {
	case engine.StatusTimeout():
		result.TimeOut()
	case engine.StatusFail():
		result.FailMismatches(outcome.Mismatches)
	default:
		result.Complete()
	}
}
