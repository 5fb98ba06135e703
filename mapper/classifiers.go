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
	"errors"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/apis"
)

// ClassifyStatusError recognizes foreign errors that already carry an
// HTTP status through the apis.StatusError interface and classifies them
// under that status. Codes and headers exposed through apis.CodedError
// and apis.HeaderError are carried over. Non-errors and errors without a
// status are passed on.
//
// Register it like any other classifier:
//
//	mapper.New().AddClassifier(mapper.ClassifyStatusError)
func ClassifyStatusError(v any) *herrors.Error {
	err, ok := v.(error)
	if !ok {
		return nil
	}
	var se apis.StatusError
	if !errors.As(err, &se) {
		return nil
	}
	e := herrors.E(se.HTTPStatus(), err.Error(), herrors.WithCauseOption(err))
	var ce apis.CodedError
	if errors.As(err, &ce) {
		if c := ce.ErrorCode(); c != "" {
			e = e.WithData("code", c)
		}
	}
	var he apis.HeaderError
	if errors.As(err, &he) {
		for name, values := range he.ErrorHeaders() {
			for _, value := range values {
				e = e.WithHeader(name, value)
			}
		}
	}
	return e
}
