/*
   Copyright 2025 The DIRPX Authors

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

// Package envx detects whether the process runs in a development or test
// environment.
//
// The mapping pipeline never consults the environment on its own: it takes
// an Environment value as an injected capability (two booleans). This
// package is the one place that is allowed to look at ambient process
// state, and only when the caller explicitly asks for it via Detect.
package envx

import (
	"os"
	"strings"
)

// Environment carries the two ambient signals consumed by the mapper's
// environment-derived configuration. The zero value means production.
type Environment struct {
	// Development reports a local or dev deployment.
	Development bool

	// Test reports a test run (CI, integration harness).
	Test bool
}

// Verbose reports whether diagnostic-friendly defaults should apply:
// stack traces and raw unknown-error messages are shown in development
// and test, hidden otherwise.
func (e Environment) Verbose() bool { return e.Development || e.Test }

// Parse interprets an environment name.
//
// Recognized (case-insensitive, surrounding space ignored):
//
//	"dev", "development", "local" -> Development
//	"test", "testing"             -> Test
//
// Anything else, including the empty string, parses as production.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development", "local":
		return Environment{Development: true}
	case "test", "testing":
		return Environment{Test: true}
	default:
		return Environment{}
	}
}

// Detect reads the ambient environment name from the first non-empty of
// $APP_ENV, $GO_ENV and $ENV, and parses it. With none of them set it
// reports production.
func Detect() Environment {
	for _, key := range []string{"APP_ENV", "GO_ENV", "ENV"} {
		if v := os.Getenv(key); v != "" {
			return Parse(v)
		}
	}
	return Environment{}
}
