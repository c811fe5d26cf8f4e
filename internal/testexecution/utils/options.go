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

// Package utils provides the options and path helpers shared by the test execution packages.
package utils

import (
	"github.com/refery/refery/internal/engine"
)

// DefaultShell is the command prefix used to run setup and teardown commands.
var DefaultShell = []string{"sh", "-c"}

// Options holds the settings of a test run.
type Options struct {
	Verbosity        engine.Verbosity
	Debug            bool
	JUnitFile        string   // Optional path of the JUnit report
	Shell            []string // Hook command prefix; the hook command is appended as the last argument
	MaxDisplayLength int      // Truncation width of diagnostics; 0 disables truncation
}

// NewOptions returns options with the default settings.
func NewOptions() *Options {
	return &Options{
		Verbosity:        engine.VerbosityNormal,
		Shell:            DefaultShell,
		MaxDisplayLength: engine.DefaultMaxDisplayLength,
	}
}

// HookShell returns the configured hook shell, falling back to DefaultShell.
func (o *Options) HookShell() []string {
	if len(o.Shell) == 0 {
		return DefaultShell
	}

	return o.Shell
}
