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

package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/utils"
)

// Config represents the user configuration of refery.
type Config struct {
	Shell            string `json:"shell,omitempty"`              // Command prefix for setup and teardown, e.g. "bash -ec"
	Verbosity        string `json:"verbosity,omitempty"`          // Default console verbosity
	MaxDisplayLength *int   `json:"max-display-length,omitempty"` // Truncation width of diagnostics, 0 disables it
	Color            string `json:"color,omitempty"`              // auto, on or off
}

const (
	// DefaultPath is where the configuration file is looked up when none is given.
	DefaultPath = "~/.config/refery.yaml"

	// DefaultShell runs setup and teardown commands.
	DefaultShell = "sh -c"
)

// Load loads and validates a refery configuration file.
// It returns os.ErrNotExist when the file does not exist, so callers can use Fallback.
func Load(fs afero.Fs, configPath string) (*Config, error) {
	if ext := filepath.Ext(configPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension")
	}

	expandedPath, err := utils.ExpandTildeAbs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := afero.ReadFile(fs, expandedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate the YAML before unmarshalling
	if err := utils.ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.setDefaults()

	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Fallback returns the default configuration. The default shell must be found in PATH.
func Fallback() (*Config, error) {
	shell := strings.Fields(DefaultShell)[0]
	if _, err := exec.LookPath(shell); err != nil {
		return nil, fmt.Errorf("missing required dependencies from PATH (%s)", shell)
	}

	cfg := &Config{}
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if strings.TrimSpace(c.Shell) == "" {
		c.Shell = DefaultShell
	}

	if c.Verbosity == "" {
		c.Verbosity = string(engine.VerbosityNormal)
	}

	if c.MaxDisplayLength == nil {
		n := engine.DefaultMaxDisplayLength
		c.MaxDisplayLength = &n
	}

	if c.Color == "" {
		c.Color = string(utils.ColorAuto)
	}
}

// ShellCommand returns the hook shell split into its words.
func (c *Config) ShellCommand() []string {
	return strings.Fields(c.Shell)
}

// DisplayLength returns the configured truncation width.
func (c *Config) DisplayLength() int {
	if c.MaxDisplayLength == nil {
		return engine.DefaultMaxDisplayLength
	}

	return *c.MaxDisplayLength
}
