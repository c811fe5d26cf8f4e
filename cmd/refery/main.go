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

// Package main is the main package for the refery tool.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	checkCmd "github.com/refery/refery/cmd/refery/check"
	configCmd "github.com/refery/refery/cmd/refery/config"
	"github.com/refery/refery/cmd/refery/run"
	"github.com/refery/refery/cmd/refery/schema"
	"github.com/refery/refery/cmd/refery/version"
	internalConfig "github.com/refery/refery/internal/config"
	"github.com/refery/refery/internal/testexecution/processor"
	"github.com/refery/refery/internal/utils"
)

// CLI represents the command-line interface.
type CLI struct {
	ConfigFile string        `default:"~/.config/refery.yaml" help:"Path to refery config file"                                name:"config" short:"c" type:"path"`
	Debug      bool          `help:"Show detailed debug information about loading, resolution and execution"`
	Color      string        `help:"Colored output: auto, on or off (default from config, else auto)"`
	Run        run.Cmd       `cmd:""                          default:"withargs"                                                 help:"Run the test suites of a test file"`
	Check      checkCmd.Cmd  `cmd:""                          help:"Check a test file, its executables and the configuration"`
	Config     configCmd.Cmd `cmd:""                          help:"Show the effective refery configuration"`
	Schema     schema.Cmd    `cmd:""                          help:"Print the JSON schema of the test file format"`
	Version    version.Cmd   `cmd:""                          help:"Print the version of refery"`
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("refery"),
		kong.Description("A functional test runner comparing programs against expectations and reference binaries."),
		kong.UsageOnError(),
	)

	configPath := cli.ConfigFile
	fs := afero.NewOsFs()

	cfg, err := internalConfig.Load(fs, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			configPath = ""

			cfg, err = internalConfig.Fallback()
			if err != nil {
				log.Fatalf("%v", err)
			}
		} else {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if cli.Color != "" {
		cfg.Color = cli.Color
		if err := cfg.Check(); err != nil {
			log.Fatalf("%v", err)
		}
	}

	utils.SetColorMode(utils.ColorMode(cfg.Color))

	// Set config in the command structs
	cli.Run.Config = cfg
	cli.Run.Debug = cli.Debug
	cli.Check.Config = cfg
	cli.Check.ConfigPath = configPath
	cli.Check.Debug = cli.Debug
	cli.Config.Config = cfg
	cli.Config.ConfigPath = configPath

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))

	// Run the selected command
	err = kctx.Run()
	if err != nil {
		stop()

		if errors.Is(err, processor.ErrTestsFailed) {
			os.Exit(1)
		}

		log.Fatalf("%v", err)
	}
}
