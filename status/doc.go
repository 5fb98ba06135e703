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

// Package status provides validation, classification and text helpers for
// HTTP status codes, plus the canonical projection onto gRPC codes.
//
// The herrors pipeline works in terms of HTTP statuses; this package is the
// single place that knows:
//
//   - which int values are statuses at all (100..599);
//   - which of them are error statuses (4xx/5xx) an *Error may carry;
//   - the reason phrase ("status text") for a status;
//   - which gRPC code a given HTTP status projects to at the gRPC edge.
//
// IMPORTANT: an error response always carries an error status. Normalize
// coerces anything outside 400..599 to 500 rather than letting a 2xx/3xx
// masquerade as an error.
package status
