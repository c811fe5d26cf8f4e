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

// Package run provides the run subcommand for the refery tool.
package run

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	internalcfg "github.com/refery/refery/internal/config"
	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/testexecution/processor"
	testexecutionUtils "github.com/refery/refery/internal/testexecution/utils"
)

// Cmd represents the run subcommand.
type Cmd struct {
	TestFile  string              `help:"Path to the YAML test file"                                           required:"" short:"f" type:"existingfile"`
	Verbosity string              `help:"Console output: verbose, normal or silent (default from config, else normal)"`
	JUnitFile string              `help:"Write a JUnit XML report to this path"                                 name:"junit-file" type:"path"`
	Config    *internalcfg.Config `kong:"-"`
	Debug     bool                `kong:"-"`
	fs        afero.Fs
}

// AfterApply implements kong.AfterApply.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the run subcommand. It returns processor.ErrTestsFailed when any test case did not pass.
func (c *Cmd) Run(ctx context.Context) error {
	options, err := c.newOptions(c.Config)
	if err != nil {
		return err
	}

	return processor.ProcessTestFile(ctx, c.fs, c.TestFile, options)
}

// newOptions creates a testexecutionUtils.Options struct from a Command and Config.
// Command-line flags take precedence over the config file.
func (c *Cmd) newOptions(cfg *internalcfg.Config) (*testexecutionUtils.Options, error) {
	options := testexecutionUtils.NewOptions()
	options.Debug = c.Debug
	options.JUnitFile = c.JUnitFile

	verbosity := c.Verbosity

	if cfg != nil {
		options.Shell = cfg.ShellCommand()
		options.MaxDisplayLength = cfg.DisplayLength()

		if verbosity == "" {
			verbosity = cfg.Verbosity
		}
	}

	level, err := engine.ParseVerbosity(verbosity)
	if err != nil {
		return nil, fmt.Errorf("--verbosity: %w", err)
	}

	options.Verbosity = level

	return options, nil
}
