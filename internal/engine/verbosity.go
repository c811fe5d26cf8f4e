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
	"strings"
)

// Verbosity controls how much the console printer writes.
type Verbosity string

// Verbosity levels.
const (
	VerbositySilent  Verbosity = "silent"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
)

// ParseVerbosity parses a verbosity level case-insensitively. An empty string means normal.
func ParseVerbosity(s string) (Verbosity, error) {
	switch v := Verbosity(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VerbosityNormal, nil
	case VerbositySilent, VerbosityNormal, VerbosityVerbose:
		return v, nil
	default:
		return "", fmt.Errorf("invalid verbosity %q (allowed: verbose, normal, silent)", s)
	}
}
