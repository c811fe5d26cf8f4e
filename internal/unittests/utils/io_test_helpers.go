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
	"bytes"
	"io"
	"os"
)

// capture redirects *target to a pipe while f runs and returns everything written to it.
// The pipe is drained concurrently so large outputs cannot block f. The original file is
// restored even if f panics.
func capture(target **os.File, f func()) string {
	old := *target

	r, w, err := os.Pipe()
	if err != nil {
		f()
		return ""
	}

	*target = w

	done := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	func() {
		defer func() {
			_ = recover()
		}()

		f()
	}()

	*target = old

	w.Close() //nolint:errcheck // cleanup function, error handling not practical
	out := <-done
	r.Close() //nolint:errcheck // cleanup function, error handling not practical

	return out
}

// CaptureStderr captures output written to os.Stderr during the execution of function f.
// Example:
//
//	output := testutils.CaptureStderr(func() {
//	   utils.WarningPrintf("Warning message")
//	})
//	assert.Contains(t, output, "Warning message")
func CaptureStderr(f func()) string {
	return capture(&os.Stderr, f)
}

// CaptureStdout captures output written to os.Stdout during the execution of function f.
func CaptureStdout(f func()) string {
	return capture(&os.Stdout, f)
}

// CapturedOutput represents the captured stdout and stderr output from a function.
type CapturedOutput struct {
	Stdout string
	Stderr string
}

// CaptureOutput captures both stdout and stderr output during the execution of function f.
func CaptureOutput(f func()) CapturedOutput {
	var output CapturedOutput

	output.Stdout = CaptureStdout(func() {
		output.Stderr = CaptureStderr(f)
	})

	return output
}
