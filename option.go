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

package herrors

import "runtime/debug"

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithNameOption sets the payload name on the error being constructed.
// Intended to be used with E(...).
func WithNameOption(name string) Option {
	return func(e *Error) *Error {
		return e.WithName(name)
	}
}

// WithDataOption adds a single data key/value on construction.
// Intended to be used with E(...).
func WithDataOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithData(k, v)
	}
}

// WithDataMapOption merges multiple data key/values on construction.
// Intended to be used with E(...).
func WithDataMapOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithDataMap(kv)
	}
}

// WithHeaderOption adds a response header on construction.
// Intended to be used with E(...).
func WithHeaderOption(name, value string) Option {
	return func(e *Error) *Error {
		return e.WithHeader(name, value)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

// WithStackOption captures the caller's stack on construction, so the
// resulting error exposes it via ErrorStack (and, with stack traces
// enabled, via payload "stack"). Wrap captures a stack unconditionally;
// E only with this option.
func WithStackOption() Option {
	return func(e *Error) *Error {
		cp := *e
		cp.stack = string(debug.Stack())
		return &cp
	}
}
