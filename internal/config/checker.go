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

// Package config provides loading and checking of the refery configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/refery/refery/internal/engine"
	"github.com/refery/refery/internal/utils"
)

// CheckDependency checks that the first word of a command names an executable,
// either as a path or through PATH.
func CheckDependency(dep string) error {
	trimmed := strings.TrimSpace(dep)
	if trimmed == "" {
		return errors.New("empty command")
	}

	if trimmed != dep {
		return fmt.Errorf("%q has leading or trailing whitespace", dep)
	}

	name, err := utils.ExpandTilde(strings.Fields(dep)[0])
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", dep, err)
	}

	_, err = utils.LookupExecutable(name)

	return err
}

// Check checks every setting and reports all the problems found together.
func (c *Config) Check() error {
	var errs []string

	if err := CheckDependency(c.Shell); err != nil {
		errs = append(errs, fmt.Sprintf("shell: %v", err))
	}

	if _, err := engine.ParseVerbosity(c.Verbosity); err != nil {
		errs = append(errs, fmt.Sprintf("verbosity: %v", err))
	}

	if c.MaxDisplayLength != nil && *c.MaxDisplayLength < 0 {
		errs = append(errs, fmt.Sprintf("max-display-length: must not be negative, got %d", *c.MaxDisplayLength))
	}

	switch utils.ColorMode(c.Color) {
	case utils.ColorAuto, utils.ColorOn, utils.ColorOff:
	default:
		errs = append(errs, fmt.Sprintf("color: invalid value %q (allowed: auto, on, off)", c.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
