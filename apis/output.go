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

import (
	"encoding/json"
	"net/http"
)

// Output is the final, client-facing normalized error representation.
//
// This is *not* an internal error type but the shape that we are
// comfortable exposing over the wire. The surrounding framework (HTTP
// handler, gRPC interceptor, message consumer) is expected to serialize
// Payload as the response body and to apply StatusCode and Headers to the
// transport; the pipeline itself never touches a socket.
type Output struct {
	// StatusCode is the HTTP status the response must carry.
	// It is always set by the pipeline and is never zero.
	StatusCode int `json:"statusCode"`

	// Payload is the JSON-serializable response body.
	Payload Payload `json:"payload"`

	// Headers are optional extra response headers the error wants to set
	// (e.g. WWW-Authenticate, Retry-After, Allow).
	//
	// The map MAY be nil. Writers SHOULD apply it verbatim; keys are in
	// canonical net/http form.
	Headers http.Header `json:"headers,omitempty"`
}

// Payload is the body of a normalized error response.
//
// Message is always present. Code, Name and Stack are optional and omitted
// from JSON when empty. Extra carries arbitrary additional keys that are
// flattened into the same JSON object, so
//
//	Payload{Message: "boom", Extra: map[string]any{"traceId": "abc"}}
//
// marshals as
//
//	{"message":"boom","traceId":"abc"}
//
// On key conflicts the fixed fields win, except that an empty (omitted)
// fixed field does not shadow an Extra key of the same name.
type Payload struct {
	// Message is the human-readable description of the failure.
	Message string `json:"message"`

	// Code is an optional machine-readable error code, e.g. "TEST" or
	// "user_not_found". It is propagated verbatim: the pipeline never
	// normalizes or rewrites user codes.
	Code string `json:"code,omitempty"`

	// Name is an optional error name (e.g. "NotFoundError"). Generic
	// fallback errors never carry one.
	Name string `json:"name,omitempty"`

	// Stack is an optional call stack, populated only when stack traces
	// are enabled in the pipeline configuration.
	Stack string `json:"stack,omitempty"`

	// Extra holds additional payload keys added by output transformers.
	// It is flattened into the JSON object next to the fixed fields.
	//
	// The map is treated as immutable: transformers should extend it via
	// WithExtra rather than writing to it in place, because the same map
	// may be observed by later transformers.
	Extra map[string]any `json:"-"`
}

// reserved payload keys owned by the fixed Payload fields.
const (
	keyMessage = "message"
	keyCode    = "code"
	keyName    = "name"
	keyStack   = "stack"
)

// WithExtra returns a copy of the payload with one extra key set.
//
// The Extra map is always copied, so the receiver (and anything that
// already holds a reference to its map) stays unchanged.
func (p Payload) WithExtra(k string, v any) Payload {
	m := make(map[string]any, len(p.Extra)+1)
	for k0, v0 := range p.Extra {
		m[k0] = v0
	}
	m[k] = v
	p.Extra = m
	return p
}

// Map returns the payload as a flat map, the same shape MarshalJSON
// produces. Useful for structpb conversion and structured logging.
func (p Payload) Map() map[string]any {
	m := make(map[string]any, len(p.Extra)+4)
	for k, v := range p.Extra {
		m[k] = v
	}
	m[keyMessage] = p.Message
	if p.Code != "" {
		m[keyCode] = p.Code
	}
	if p.Name != "" {
		m[keyName] = p.Name
	}
	if p.Stack != "" {
		m[keyStack] = p.Stack
	}
	return m
}

// MarshalJSON flattens Extra into the same object as the fixed fields.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// UnmarshalJSON splits a flat object back into fixed fields and Extra.
// Unknown keys land in Extra; the fixed keys are consumed.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = Payload{}
	if v, ok := m[keyMessage].(string); ok {
		p.Message = v
		delete(m, keyMessage)
	}
	if v, ok := m[keyCode].(string); ok {
		p.Code = v
		delete(m, keyCode)
	}
	if v, ok := m[keyName].(string); ok {
		p.Name = v
		delete(m, keyName)
	}
	if v, ok := m[keyStack].(string); ok {
		p.Stack = v
		delete(m, keyStack)
	}
	if len(m) > 0 {
		p.Extra = m
	}
	return nil
}
