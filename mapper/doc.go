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

// Package mapper converts arbitrary raw values (errors, recovered panic
// payloads, foreign error types) into normalized HTTP error outputs.
//
// # Pipeline model
//
// Mapping runs in two stages. The classification stage turns the raw value
// into a *herrors.Error:
//
//  1. If the raw value already is (or wraps) a *herrors.Error, it is used
//     as-is. No classifiers run and no observers fire.
//  2. Otherwise the registered classifiers run in registration order. The
//     first one to return a non-nil error wins and the rest are skipped.
//  3. If no classifier recognizes the value, every registered observer is
//     notified in registration order and the value is wrapped into a
//     generic 500 via herrors.Wrap.
//
// The transformation stage then folds the classified error's default
// output through the transformer chain: the built-in transformers first,
// then user transformers in registration order. Each transformer receives
// the output produced so far together with the raw value and the
// classified error, and returns the next output. Transformers always run,
// including for values that entered the pipeline already classified.
//
// # Built-in transformers
//
// Three built-ins are assembled from the configuration at Build time:
//
//   - stack: when stack traces are enabled, copies a stack trace into
//     payload.stack. A trace exposed by the raw value itself wins over the
//     one captured on the classified error.
//   - code: copies the error code into payload.code. The classified
//     error's own code wins; for values that were not already classified,
//     a code exposed by the raw value is used as a fallback. Codes pass
//     through verbatim.
//   - suppress: when unknown-error messages are disabled, replaces the
//     message of generic fallback 500s with GenericMessage. Errors
//     produced by classifiers are never touched, whatever their status.
//
// # Building a mapper
//
// A mapper is assembled through a builder and frozen by Build:
//
//	m := mapper.New(mapper.WithEnvironment(env)).
//		AddClassifier(mapper.ClassifyStatusError).
//		AddClassifier(classifyTimeout).
//		AddObserver(slogx.Observer(logger)).
//		Build()
//
//	out := m.Map(err)
//
// The returned value is immutable: registration order is captured at
// Build time and later mutations of the builder do not affect it. Map is
// safe for concurrent use.
//
// # Defaults
//
// By default stack traces are hidden and unknown-error messages are
// suppressed, which is the correct posture for production. Passing an
// environment via WithEnvironment flips both flags on for development and
// test environments. Explicit WithStackTrace and WithUnknownErrorMessage
// options override the environment-derived defaults in either direction.
//
// # Diagnostics
//
// Explain reports how a raw value would be mapped without side effects:
// it never notifies observers. The output is line-oriented and meant for
// humans debugging a configuration, not for machines.
package mapper
