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

// ErrorDescriptor is a flat, transport-friendly description of one mapped
// error outcome.
//
// This type intentionally uses plain strings and ints so that it can live
// in the public "apis" layer and be used by adapters (HTTP, gRPC, logging)
// without importing the concrete error or pipeline types.
//
// It describes the *result* of mapping: the raw value's dynamic type, the
// final status/code/message, and whether the generic fallback produced it.
type ErrorDescriptor struct {
	// StatusCode is the final HTTP status of the mapped output.
	StatusCode int `json:"status_code"`

	// Code is the final machine-readable payload code, if any.
	Code string `json:"code,omitempty"`

	// Name is the final payload name, if any.
	Name string `json:"name,omitempty"`

	// Message is the final payload message.
	Message string `json:"message,omitempty"`

	// Kind is the dynamic Go type of the raw value that was mapped,
	// e.g. "*errors.errorString" or "string". Diagnostic only.
	Kind string `json:"kind,omitempty"`

	// Generic reports whether the raw value itself carried a classified
	// error marked generic, such as a wrapped panic payload. Values that
	// were classified during mapping report false.
	Generic bool `json:"generic,omitempty"`
}
