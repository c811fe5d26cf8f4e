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

// Package config provides the config subcommand for the refery tool.
package config

import (
	"fmt"

	"github.com/alecthomas/kong"
	"sigs.k8s.io/yaml"

	internalcfg "github.com/refery/refery/internal/config"
	"github.com/refery/refery/internal/utils"
)

// Cmd represents the config subcommand.
type Cmd struct {
	Check      bool                `help:"Check the configuration and report every problem"`
	Config     *internalcfg.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
}

// Run executes the config subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	if c.ConfigPath == "" {
		utils.OutputPrintf("No configuration file provided, using defaults\n\n")
	} else {
		utils.OutputPrintf("Configuration file: %s\n\n", c.ConfigPath)
	}

	data, err := yaml.Marshal(c.Config)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	utils.OutputPrintf("%s", data)

	if !c.Check {
		return nil
	}

	if err := c.Config.Check(); err != nil {
		return err
	}

	utils.OutputPrintf("\nConfiguration check successful\n")

	return nil
}
