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

// Package version holds the build version of refery.
package version

// version is set at build time with
// -ldflags "-X github.com/refery/refery/internal/version.version=v1.2.3".
//
//nolint:gochecknoglobals // set through ldflags
var version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
