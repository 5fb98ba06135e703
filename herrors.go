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

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/status"
)

// Error is the canonical classified HTTP error for dirpx.
//
// It carries:
//   - Status: the HTTP status code the error should be served with (4xx/5xx);
//   - Message: human-oriented description (what went wrong);
//   - Name: optional error name exposed as payload "name";
//   - Data: arbitrary key/value payload; the "code" key is recognized by
//     the mapping pipeline and propagated to payload "code";
//   - Headers: optional response headers to ship with the error;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
//
// An Error produced by Wrap is *generic*: it stands for a value nobody
// classified. Generic errors never leak their Message into the HTTP reason
// phrase (StatusText is pinned to "Internal Server Error") and never carry
// a Name in their default output.
type Error struct {
	// Status is the HTTP status code. Constructors coerce values outside
	// 400..599 to 500; an error response never carries a success status.
	Status int

	// Message is a human-readable explanation. This is what ends up in the
	// "message" field of the default output (unless a transformer rewrites
	// it downstream).
	Message string

	// Name is an optional error name, e.g. "NotFoundError". It surfaces as
	// the payload "name" field. Generic errors ignore it on render.
	Name string

	// Data is an optional, shallow map of extra fields describing the
	// error. The mapping pipeline reads Data["code"] (string) when
	// propagating machine-readable codes.
	// The map is treated as immutable: WithData/WithDataMap always copy.
	Data map[string]any

	// Headers holds optional response headers this error wants to set,
	// e.g. WWW-Authenticate on a 401. Treated as immutable: WithHeader
	// always copies.
	Headers http.Header

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error

	// generic marks errors manufactured by Wrap for unclassified values.
	// The mark gates reason-phrase forcing and unknown-message suppression.
	generic bool

	// stack is the call stack captured at construction, if any.
	stack string
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return herrors.E(http.StatusNotFound, "user does not exist",
//	    herrors.WithDataOption("code", "user_not_found"),
//	    herrors.WithNameOption("NotFoundError"),
//	)
//
// The status code is normalized via status.Normalize, so a non-error
// status silently becomes 500. It always returns a *new* Error and applies
// all provided options in order.
func E(statusCode int, msg string, opts ...Option) *Error {
	e := &Error{Status: status.Normalize(statusCode), Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Wrap is the fallback constructor: it turns an arbitrary value nobody
// classified into a generic 500 Error.
//
// The message is derived from the value: error values contribute their
// Error() string, everything else goes through fmt.Sprint. The call stack
// is captured at wrap time so development configurations can expose it.
//
// The resulting Error is marked generic: its StatusText is pinned to
// "Internal Server Error" no matter what the derived message says, and the
// unknown-message suppression transformer recognizes it downstream. The
// derived message itself is preserved on the Error; observers and
// development-mode outputs still need the original text.
func Wrap(v any) *Error {
	e := &Error{
		Status:  http.StatusInternalServerError,
		generic: true,
		stack:   string(debug.Stack()),
	}
	switch t := v.(type) {
	case *Error:
		// Callers normally check From before wrapping; tolerate the slip
		// and return the already-classified error untouched.
		if t != nil {
			return t
		}
		e.Message = "<nil>"
	case error:
		e.Message = t.Error()
		e.Cause = t
	default:
		e.Message = fmt.Sprint(v)
	}
	return e
}

// From reports whether v already is a classified HTTP error, and returns it.
//
// It recognizes a direct *Error as well as an error whose Unwrap chain
// contains one. A typed-nil *Error is NOT a classified error.
func From(v any) (*Error, bool) {
	switch t := v.(type) {
	case *Error:
		if t == nil {
			return nil, false
		}
		return t, true
	case error:
		var e *Error
		if errors.As(t, &e) && e != nil {
			return e, true
		}
	}
	return nil, false
}

// Error implements the built-in error interface.
//
// The format is:
//
//	herrors: <status> <status-text>: <message>
//
// e.g. "herrors: 404 Not Found: user does not exist". This keeps log lines
// both human- and machine-scannable.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("herrors: %d %s: %s", e.Status, e.StatusText(), e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Generic reports whether this error was manufactured by Wrap for a value
// nobody classified (the unknown-error fallback path).
func (e *Error) Generic() bool { return e.generic }

// StatusText returns the HTTP reason phrase for this error.
//
// For generic errors the phrase is pinned to the one for 500; the derived
// message must never leak into the reason phrase, whatever it contains.
func (e *Error) StatusText() string {
	if e.generic {
		return status.Text(http.StatusInternalServerError)
	}
	return status.Text(e.Status)
}

// HTTPStatus implements apis.StatusError.
func (e *Error) HTTPStatus() int { return e.Status }

// ErrorCode implements apis.CodedError. The code is read from Data["code"]
// and must be a string; anything else reads as "no code".
func (e *Error) ErrorCode() string {
	if c, ok := e.Data["code"].(string); ok {
		return c
	}
	return ""
}

// ErrorStack implements apis.StackError. It returns the stack captured at
// construction (Wrap always captures; E only with WithStackOption).
func (e *Error) ErrorStack() string { return e.stack }

// ErrorHeaders implements apis.HeaderError.
func (e *Error) ErrorHeaders() http.Header { return e.Headers }

// Output renders the error's default client-facing representation.
//
// The payload message falls back to the status text when the error has no
// message of its own. Name is included only for non-generic errors.
// Headers are cloned so the rendered Output is detached from the Error.
func (e *Error) Output() apis.Output {
	msg := e.Message
	if msg == "" {
		msg = status.Text(e.Status)
	}
	p := apis.Payload{Message: msg}
	if !e.generic {
		p.Name = e.Name
	}
	return apis.Output{
		StatusCode: e.Status,
		Payload:    p,
		Headers:    e.Headers.Clone(),
	}
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the status and data but present the message
// in a different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithName returns a shallow copy of e with the given payload name set.
func (e *Error) WithName(name string) *Error {
	cp := *e
	cp.Name = name
	return &cp
}

// WithData returns a shallow copy of e with one extra key/value in Data.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithData(k string, v any) *Error {
	cp := *e
	// No data yet; allocate a single-entry map.
	if len(cp.Data) == 0 {
		cp.Data = map[string]any{k: v}
		return &cp
	}
	// Copy existing data and add one more.
	m := make(map[string]any, len(cp.Data)+1)
	for k0, v0 := range cp.Data {
		m[k0] = v0
	}
	m[k] = v
	cp.Data = m
	return &cp
}

// WithDataMap returns a shallow copy of e with all provided kv merged into
// Data.
//
// If the Error already has Data, both maps are copied and merged, with kv
// taking precedence on key conflicts.
func (e *Error) WithDataMap(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Data)+len(kv))
	for k0, v0 := range cp.Data {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Data = m
	return &cp
}

// WithHeader returns a shallow copy of e with one response header added.
// The header map is always cloned; the original error keeps its own.
func (e *Error) WithHeader(name, value string) *Error {
	cp := *e
	h := cp.Headers.Clone()
	if h == nil {
		h = make(http.Header, 1)
	}
	h.Add(name, value)
	cp.Headers = h
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
