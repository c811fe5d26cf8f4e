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

// Package utils provides console message helpers and path utilities shared across refery.
package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/gonvenience/bunt"
)

// ColorMode controls whether console output is colored.
type ColorMode string

// Supported color modes.
const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// SetColorMode configures colored output for the whole process.
func SetColorMode(mode ColorMode) {
	switch mode {
	case ColorOn:
		bunt.SetColorSettings(bunt.ON, bunt.ON)
	case ColorOff:
		bunt.SetColorSettings(bunt.OFF, bunt.OFF)
	default:
		bunt.SetColorSettings(bunt.AUTO, bunt.AUTO)
	}
}

// DebugPrintf prints a debug message to stderr with a "DEBUG: " prefix.
// Callers are responsible for checking whether debug output is enabled.
func DebugPrintf(format string, args ...any) {
	printWithPrefix(os.Stderr, bunt.Style("DEBUG: ", bunt.Foreground(bunt.SteelBlue)), format, args...)
}

// WarningPrintf prints a warning message to stderr with a "WARNING: " prefix.
func WarningPrintf(format string, args ...any) {
	printWithPrefix(os.Stderr, bunt.Style("WARNING: ", bunt.Foreground(bunt.Gold), bunt.Bold()), format, args...)
}

// ErrorPrintf prints an error message to stderr with an "ERROR: " prefix.
func ErrorPrintf(format string, args ...any) {
	printWithPrefix(os.Stderr, bunt.Style("ERROR: ", bunt.Foreground(bunt.OrangeRed), bunt.Bold()), format, args...)
}

// OutputPrintf prints regular program output to stdout.
func OutputPrintf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...) //nolint:errcheck // output function, error handling not practical
}

func printWithPrefix(w io.Writer, prefix, format string, args ...any) {
	fmt.Fprint(w, prefix)           //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, format, args...) //nolint:errcheck // output function, error handling not practical
}
