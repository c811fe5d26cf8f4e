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

package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// OutputMode is the way an output stream is compared against its expectation.
type OutputMode string

const (
	// OutputModeStrict requires the actual stream to equal the expectation byte for byte.
	OutputModeStrict OutputMode = "strict"
	// OutputModeExists only requires the actual stream and the expectation to be both empty or both non-empty.
	OutputModeExists OutputMode = "exists"
)

// ParseOutputMode parses a mode name case-insensitively.
func ParseOutputMode(s string) (OutputMode, error) {
	switch mode := OutputMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case OutputModeStrict, OutputModeExists:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid output mode %q (allowed: %s, %s)", s, OutputModeStrict, OutputModeExists)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *OutputMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("output mode must be a string: %w", err)
	}

	mode, err := ParseOutputMode(s)
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// JSONSchema implements jsonschema.JSONSchemer.
func (OutputMode) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(OutputModeStrict), string(OutputModeExists)},
		Description: "How an output stream is compared: strict equality, or emptiness only",
	}
}

// Duration is a timeout read from a test file. It accepts a number of seconds
// (fractions allowed) or a Go duration string such as "1500ms".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	var parsed time.Duration

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", s, err)
		}

		parsed = v
	} else {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid timeout %s: must be a number of seconds or a duration string", raw)
		}

		parsed = time.Duration(seconds * float64(time.Second))
	}

	if parsed < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", raw)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// JSONSchema implements jsonschema.JSONSchemer.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number", Description: "Seconds"},
			{Type: "string", Description: "Go duration, e.g. 1500ms"},
		},
		Description: "Timeout after which the process is killed; 0 or absent means no timeout",
	}
}
