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

package processor

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/refery/refery/internal/api"
	"github.com/refery/refery/internal/utils"
)

// Load reads a test file and resolves its suites against the default mapping.
// Every problem with the file's content is reported as an *api.ConfigError.
func Load(fs afero.Fs, path string) ([]api.TestSuite, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test file %s: %w", path, err)
	}

	if err := utils.ValidateYAML(data); err != nil {
		return nil, api.NewConfigError(err.Error())
	}

	var testFile api.TestFile
	if err := yaml.UnmarshalStrict(data, &testFile); err != nil {
		return nil, api.NewConfigError(fmt.Sprintf("failed to parse test file: %v", err))
	}

	return testFile.Resolve()
}

// IsConfigError returns true if err is, or wraps, an *api.ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *api.ConfigError
	return errors.As(err, &cfgErr)
}
