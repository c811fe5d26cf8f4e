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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gertd/go-pluralize"
	"github.com/gonvenience/bunt"
	"github.com/mattn/go-runewidth"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/refery/refery/internal/api"
)

const (
	spaces = "    " // Global indentation constant for consistent formatting.

	// DefaultMaxDisplayLength bounds the width of values shown in diagnostics.
	DefaultMaxDisplayLength = 2000
)

var (
	suiteHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginLeft(len(spaces))
)

// ConsolePrinter renders run progress on a terminal.
type ConsolePrinter struct {
	w                io.Writer
	verbosity        Verbosity
	maxDisplayLength int
	plural           *pluralize.Client
}

// NewConsolePrinter creates a printer writing to w. A non-positive maxDisplayLength disables truncation.
func NewConsolePrinter(w io.Writer, verbosity Verbosity, maxDisplayLength int) *ConsolePrinter {
	return &ConsolePrinter{
		w:                w,
		verbosity:        verbosity,
		maxDisplayLength: maxDisplayLength,
		plural:           pluralize.NewClient(),
	}
}

// SuiteStarted prints the suite header.
func (p *ConsolePrinter) SuiteStarted(suite *api.TestSuite) {
	if p.verbosity == VerbositySilent {
		return
	}

	title := suite.Name
	if suite.Fatal {
		title += " (fatal)"
	}

	fmt.Fprintln(p.w, suiteHeaderStyle.Render(title)) //nolint:errcheck // output function, error handling not practical
}

// CaseFinished prints the status line of a test case, followed by its diagnostics.
func (p *ConsolePrinter) CaseFinished(result *TestCaseResult) {
	if p.verbosity == VerbositySilent {
		return
	}

	fmt.Fprint(p.w, p.formatCase(result)) //nolint:errcheck // output function, error handling not practical
}

// SuiteFinished separates suites with an empty line.
func (p *ConsolePrinter) SuiteFinished(_ *TestSuiteResult) {
	if p.verbosity == VerbositySilent {
		return
	}

	fmt.Fprintln(p.w) //nolint:errcheck // output function, error handling not practical
}

// RunFinished prints the run summary.
func (p *ConsolePrinter) RunFinished(result *RunResult) {
	if p.verbosity == VerbositySilent {
		return
	}

	fmt.Fprint(p.w, p.formatSummary(result)) //nolint:errcheck // output function, error handling not practical
}

func (p *ConsolePrinter) formatCase(result *TestCaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%.2fs)\n", colorSymbol(result.Status), result.Name, result.Duration.Seconds())

	verbose := p.verbosity == VerbosityVerbose

	if verbose {
		b.WriteString(p.formatHook(result.Setup))

		if result.Execution != nil {
			fmt.Fprintf(&b, "%s$ %s\n", spaces, result.Execution.Subject.CommandLine())

			if ref := result.Execution.Reference; ref != nil {
				fmt.Fprintf(&b, "%sref: $ %s\n", spaces, ref.CommandLine())
			}
		}
	} else if result.Setup.Failed() {
		b.WriteString(p.formatHook(result.Setup))
	}

	if result.Error != nil {
		b.WriteString(formatErrorBlock(result.Error.Error()))
	}

	if result.Status == StatusTimeout() && result.Execution != nil {
		if subject := result.Execution.Subject; subject.TimedOut {
			fmt.Fprintf(&b, "%s%s killed after %.2fs\n", spaces, StatusTimeout().Symbol, subject.Duration.Seconds())
		}

		if ref := result.Execution.Reference; ref != nil && ref.TimedOut {
			fmt.Fprintf(&b, "%s%s reference killed after %.2fs\n", spaces, StatusTimeout().Symbol, ref.Duration.Seconds())
		}
	}

	for _, m := range result.Mismatches {
		b.WriteString(p.formatMismatch(m))
	}

	if verbose || result.Teardown.Failed() {
		b.WriteString(p.formatHook(result.Teardown))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "%s%s %s\n", spaces, bunt.Style("WARNING:", bunt.Foreground(bunt.Gold)), w)
	}

	return b.String()
}

// formatHook shows a hook command and its output. Returns "" for a nil hook.
func (p *ConsolePrinter) formatHook(hook *HookResult) string {
	if hook == nil {
		return ""
	}

	symbol := StatusPass().Symbol
	suffix := ""

	if hook.Failed() {
		symbol = StatusFail().Symbol
		if code := hook.ExitCode(); code >= 0 {
			suffix = fmt.Sprintf(" [exit code: %d]", code)
		} else {
			suffix = fmt.Sprintf(" [error: %v]", hook.Error)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s%s: %s %s%s\n", spaces, hook.Phase, symbol, hook.Command, suffix)

	output := strings.TrimSuffix(string(hook.Stdout)+string(hook.Stderr), "\n")
	if output != "" {
		output = p.truncate(output)
		b.WriteString(spaces + spaces + strings.ReplaceAll(output, "\n", "\n"+spaces+spaces) + "\n")
	}

	return b.String()
}

func (p *ConsolePrinter) formatMismatch(m Mismatch) string {
	body := m.Summary()

	if m.Dimension != DimensionExitCode && m.Mode == api.OutputModeStrict {
		body += "\n" + p.truncate(formatDiff(m.Expected, m.Actual))
	}

	return panelStyle.Render(body) + "\n"
}

// truncate shortens s for display when it is wider than the configured limit.
func (p *ConsolePrinter) truncate(s string) string {
	if p.maxDisplayLength <= 0 || runewidth.StringWidth(s) <= p.maxDisplayLength {
		return s
	}

	return runewidth.Truncate(s, p.maxDisplayLength, "…") + "\n(truncated)"
}

func (p *ConsolePrinter) formatSummary(result *RunResult) string {
	var b strings.Builder

	c := result.Counts()

	if p.verbosity == VerbosityVerbose {
		fmt.Fprintf(&b, "run ID: %s\n", result.ID)
	}

	if result.Aborted {
		fmt.Fprintf(&b, "%s run aborted: %s\n", colorSymbol(StatusConfigError()), result.AbortReason)
	}

	parts := []string{fmt.Sprintf("%d passed", c.Passed)}
	if c.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", c.Failed))
	}

	if c.TimedOut > 0 {
		parts = append(parts, fmt.Sprintf("%d timed out", c.TimedOut))
	}

	if c.Errors > 0 {
		parts = append(parts, p.plural.Pluralize("error", c.Errors, true))
	}

	if c.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", c.Skipped))
	}

	status := "ok"
	if !result.Successful() {
		status = bunt.Style(StatusFail().Value, bunt.Foreground(bunt.Red), bunt.Bold())
	}

	fmt.Fprintf(&b, "%s\t%s in %s: %s\t%.3fs\n",
		status,
		p.plural.Pluralize("test", c.Total(), true),
		p.plural.Pluralize("suite", len(result.Suites), true),
		strings.Join(parts, ", "),
		result.Duration.Seconds(),
	)

	return b.String()
}

// formatErrorBlock formats an error for display, prefixing every line with the error symbol.
func formatErrorBlock(errMsg string) string {
	split := strings.Split(strings.TrimSuffix(errMsg, "\n"), "\n")

	lines := make([]string, 0, len(split))
	for _, s := range split {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}

		lines = append(lines, spaces+StatusConfigError().Symbol+" "+trimmed)
	}

	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// formatDiff returns a unified diff from the actual value to the expected one.
// When exactly one of the values ends with a newline, newlines are made visible.
func formatDiff(expected, actual string) string {
	if strings.HasSuffix(expected, "\n") != strings.HasSuffix(actual, "\n") {
		expected = strings.ReplaceAll(expected, "\n", "↵\n")
		actual = strings.ReplaceAll(actual, "\n", "↵\n")
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(actual),
		B:        difflib.SplitLines(expected),
		FromFile: "got",
		ToFile:   "expected",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("expected: %q\ngot:      %q", expected, actual)
	}

	return strings.TrimSuffix(diff, "\n")
}

func colorSymbol(s Status) string {
	switch s {
	case StatusPass():
		return bunt.Style(s.Symbol, bunt.Foreground(bunt.LimeGreen))
	case StatusFail():
		return bunt.Style(s.Symbol, bunt.Foreground(bunt.Red), bunt.Bold())
	case StatusTimeout():
		return bunt.Style(s.Symbol, bunt.Foreground(bunt.DarkOrange), bunt.Bold())
	case StatusConfigError():
		return bunt.Style(s.Symbol, bunt.Foreground(bunt.OrangeRed), bunt.Bold())
	default:
		return bunt.Style(s.Symbol, bunt.Foreground(bunt.DimGray))
	}
}
