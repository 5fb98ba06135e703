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

package adapter

import (
	"fmt"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/apis"
)

// Describe condenses a raw value together with its mapped output into a
// portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation. It carries the final transport-level fields of the
// output plus the dynamic type of the raw value, so operators can tell
// apart a string panic payload from a wrapped database error even when
// both mapped to the same 500.
//
// No redaction or filtering is performed; the descriptor exposes exactly
// what the output contains. Callers logging descriptors in production
// should map with the production presentation flags so that suppression
// has already happened by the time Describe runs.
func Describe(v any, out apis.Output) apis.ErrorDescriptor {
	d := apis.ErrorDescriptor{
		StatusCode: out.StatusCode,
		Code:       out.Payload.Code,
		Name:       out.Payload.Name,
		Message:    out.Payload.Message,
		Kind:       fmt.Sprintf("%T", v),
	}
	if e, ok := herrors.From(v); ok {
		d.Generic = e.Generic()
	}
	return d
}

// DescribeError is Describe for values that are already classified. The
// output is rendered from the error itself, so the descriptor reflects
// the error's default presentation without any transformers applied.
func DescribeError(e *herrors.Error) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return Describe(e, e.Output())
}
