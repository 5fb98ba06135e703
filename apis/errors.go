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

import "net/http"

// StatusError represents an error that already knows which HTTP status it
// should be served with.
//
// Many Go codebases attach a status to their error types (handler errors,
// REST client errors, reverse-proxy errors). The pipeline's probes and the
// ready-made classifiers use this interface to pick that status up without
// depending on the concrete type.
//
// Implementations MUST return a valid HTTP status (100..599). Callers
// should treat out-of-range values as 500.
type StatusError interface {
	error

	// HTTPStatus returns the HTTP status code this error maps to.
	HTTPStatus() int
}

// CodedError represents an error that is classified into a machine-readable
// error *code*.
//
// A code usually denotes a stable, enumerable category, such as:
//   - "TEST", a test marker
//   - "user_not_found", a referenced object does not exist
//   - "EACCES", a syscall-style code
//
// Codes are propagated to clients verbatim. Unlike dirpx.dev/derrors codes,
// they are NOT normalized here: whatever casing and charset the error
// exposes is what the payload will carry.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MAY be empty, which means "no code"; callers
	// skip empty codes rather than inventing one.
	ErrorCode() string
}

// StackError represents an error that carries a captured call stack.
//
// The stack is a single opaque string (typically the runtime/debug.Stack
// format, but any format the error chooses is accepted). The pipeline only
// ever copies it into the payload when stack traces are enabled; it never
// parses it.
type StackError interface {
	error

	// ErrorStack returns the captured stack, or "" when none was captured.
	ErrorStack() string
}

// HeaderError represents an error that wants specific HTTP response headers
// to accompany it, e.g. WWW-Authenticate on a 401 or Allow on a 405.
//
// Implementations SHOULD return a map that is safe for the caller to read
// and that will not be mutated afterwards. Returning nil means "no headers".
type HeaderError interface {
	error

	// ErrorHeaders returns the response headers for this error. May return nil.
	ErrorHeaders() http.Header
}
