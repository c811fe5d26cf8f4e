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

package engine

import (
	"fmt"

	"github.com/refery/refery/internal/api"
)

// Dimension is an observable aspect of a process that can be checked against an expectation.
type Dimension string

// Checked dimensions, in comparison order.
const (
	DimensionStdout   Dimension = "stdout"
	DimensionStderr   Dimension = "stderr"
	DimensionExitCode Dimension = "exit_code"
)

// ExpectationSource tells where the effective expectation of a dimension came from.
type ExpectationSource string

const (
	// SourceExplicit means the test case (or the default mapping) set the expectation.
	SourceExplicit ExpectationSource = "explicit"
	// SourceRef means the expectation was observed on the reference executable.
	SourceRef ExpectationSource = "ref"
)

// Mismatch is a failing dimension of a test case.
// Expected and Actual hold the full values; display truncation happens when printing.
type Mismatch struct {
	Dimension Dimension
	Mode      api.OutputMode // Empty for DimensionExitCode
	Source    ExpectationSource
	Expected  string
	Actual    string
}

// Summary returns a one-line description of the mismatch.
func (m Mismatch) Summary() string {
	var msg string

	switch {
	case m.Dimension == DimensionExitCode:
		msg = fmt.Sprintf("exit code: expected %s, got %s", m.Expected, m.Actual)
	case m.Mode == api.OutputModeExists && m.Expected == "":
		msg = fmt.Sprintf("%s: expected nothing, got something", m.Dimension)
	case m.Mode == api.OutputModeExists:
		msg = fmt.Sprintf("%s: expected something, got nothing", m.Dimension)
	default:
		msg = fmt.Sprintf("%s: output differs", m.Dimension)
	}

	if m.Source == SourceRef {
		msg += " (expectation from ref)"
	}

	return msg
}
