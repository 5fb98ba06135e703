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

package status

import "net/http"

// Min and Max define the range of values that are HTTP statuses at all.
//
// We keep these as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the
// same constraints.
const (
	// Min is the lowest valid HTTP status code (1xx informational).
	Min = 100

	// Max is the highest valid HTTP status code. 599 covers the
	// non-standard but widely used 5xx extensions (e.g. nginx's 598/599).
	Max = 599
)

// Valid reports whether code is an HTTP status code at all (100..599).
func Valid(code int) bool {
	return code >= Min && code <= Max
}

// IsError reports whether code is an error status (4xx or 5xx).
func IsError(code int) bool {
	return code >= 400 && code <= Max
}

// IsClientError reports whether code is a client error status (4xx).
func IsClientError(code int) bool {
	return code >= 400 && code <= 499
}

// IsServerError reports whether code is a server error status (5xx).
func IsServerError(code int) bool {
	return code >= 500 && code <= Max
}

// Normalize coerces an arbitrary int into a status an error response may
// legitimately carry.
//
// Anything that is not a 4xx/5xx (zero, negative values, 2xx "successes",
// out-of-range garbage) becomes 500. A client must never receive a success
// status on an error body.
func Normalize(code int) int {
	if !IsError(code) {
		return http.StatusInternalServerError
	}
	return code
}

// Text returns the HTTP reason phrase for the given status code.
//
// For codes net/http has no name for (valid but unnamed, e.g. 599) it
// returns "Unknown Status Code" rather than an empty string, so callers can
// always render *something* into message/name slots.
func Text(code int) string {
	if t := http.StatusText(code); t != "" {
		return t
	}
	return "Unknown Status Code"
}
