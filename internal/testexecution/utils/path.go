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

package utils

import (
	"errors"
	"strings"

	"github.com/refery/refery/internal/utils"
)

// ExpandCommandPath turns an executable path from a test file into the absolute path that is spawned.
// A leading ~/ is expanded to the home directory and every other path, bare names included,
// is relative to the working directory. PATH is never searched.
func ExpandCommandPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("empty path")
	}

	return utils.ExpandTildeAbs(path)
}

// ResolveCommandPath expands path like ExpandCommandPath and verifies that it names an executable.
// It returns the path that would be spawned.
func ResolveCommandPath(path string) (string, error) {
	expanded, err := ExpandCommandPath(path)
	if err != nil {
		return "", err
	}

	return utils.LookupExecutable(expanded)
}
