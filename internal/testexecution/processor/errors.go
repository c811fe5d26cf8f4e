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
	"os"
)

// ErrTestsFailed is returned when the run completed but was not successful.
var ErrTestsFailed = errors.New("tests failed")

// reportError handles error reporting: print detailed error and FAIL status, returns the wrapped error for tracking.
func reportError(target, failureReason string, err error) error {
	errorMsg := fmt.Sprintf("%s in %s: %v", failureReason, target, err)
	fmt.Fprintf(os.Stderr, "# %s\n%s\n", target, errorMsg)            //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(os.Stderr, "FAIL\t%s\t[%s]\n", target, failureReason) //nolint:errcheck // output function, error handling not practical

	return fmt.Errorf("%s in %s: %w", failureReason, target, err)
}

// reportTestFileError handles error reporting for test files with detailed error message.
// The returned error wraps err.
func reportTestFileError(testFile string, err error, failureReason string) error {
	fmt.Fprintf(os.Stderr, "# %s\n%v\n", testFile, err)                 //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(os.Stderr, "FAIL\t%s\t[%s]\n", testFile, failureReason) //nolint:errcheck // output function, error handling not practical

	return fmt.Errorf("%s: %w", testFile, err)
}
