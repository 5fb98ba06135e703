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

package mapper

import (
	"net/http"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/apis"
)

// GenericMessage replaces the derived message of generic fallback 500s
// when unknown-error messages are suppressed.
const GenericMessage = "Internal server error. Please try again later."

// assembleBuiltins returns the built-in transformer chain for the given
// configuration. The order is fixed: stack, then code, then suppress.
func assembleBuiltins(cfg Config) []Transformer {
	ts := make([]Transformer, 0, 3)
	if cfg.ShowStackTrace {
		ts = append(ts, stackTransformer)
	}
	ts = append(ts, codeTransformer)
	if !cfg.ShowUnknownErrorMessage {
		ts = append(ts, suppressTransformer)
	}
	return ts
}

// stackTransformer copies a stack trace into payload.stack. A trace
// exposed by the raw value wins over the one captured on the classified
// error.
func stackTransformer(out apis.Output, v any, e *herrors.Error) apis.Output {
	if se, ok := v.(apis.StackError); ok {
		if st := se.ErrorStack(); st != "" {
			out.Payload.Stack = st
			return out
		}
	}
	if st := e.ErrorStack(); st != "" {
		out.Payload.Stack = st
	}
	return out
}

// codeTransformer copies the error code into payload.code, verbatim. The
// classified error's own code wins. A code exposed by the raw value is
// consulted only when the value was not already classified, so that a
// classifier clearing the code is not silently undone.
func codeTransformer(out apis.Output, v any, e *herrors.Error) apis.Output {
	if c := e.ErrorCode(); c != "" {
		out.Payload.Code = c
		return out
	}
	if _, ok := herrors.From(v); ok {
		return out
	}
	if ce, ok := v.(apis.CodedError); ok {
		if c := ce.ErrorCode(); c != "" {
			out.Payload.Code = c
		}
	}
	return out
}

// suppressTransformer replaces the message of generic fallback 500s with
// GenericMessage. Classified errors pass through untouched, whatever
// their status.
func suppressTransformer(out apis.Output, v any, e *herrors.Error) apis.Output {
	if suppressible(e) {
		out.Payload.Message = GenericMessage
	}
	return out
}

func suppressible(e *herrors.Error) bool {
	return e != nil && e.Generic() && e.Status == http.StatusInternalServerError
}
