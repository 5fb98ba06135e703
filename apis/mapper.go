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

package apis

// Mapper is an immutable, concurrency-safe snapshot of the error mapping
// pipeline. It converts an arbitrary raw value (a Go error, a recovered
// panic payload, anything) into a normalized Output.
type Mapper interface {
	// Map converts a raw value into the final client-facing Output.
	// It never panics and never fails: every input, including nil and
	// non-error values, produces a well-formed Output.
	//
	// Map is pure except for the unknown-error observers registered on
	// the pipeline, which fire when no classifier recognizes the value.
	Map(v any) Output

	// Explain returns a human-readable trace of how the value would be
	// mapped: which classification source matched, which transformers
	// applied, and the resulting status and message.
	//
	// Unlike Map, Explain does NOT invoke unknown-error observers, so it
	// is safe to call for diagnostics without double-firing telemetry.
	// The output is intended for inspection and tests, not for stable
	// machine parsing.
	Explain(v any) string
}
