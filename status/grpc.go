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

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// grpcByHTTP defines the library's built-in projection of HTTP statuses onto
// canonical gRPC codes. These are only defaults for the gRPC edge: a mapped
// error is an HTTP-shaped Output first, and this table decides how that
// shape degrades onto a status-code-only transport.
//
// The intent is to stay close to the canonical google.rpc code mapping,
// while keeping a sensible answer for the HTTP-only statuses gRPC never
// defined (405, 410, 499, ...).
var grpcByHTTP = map[int]codes.Code{
	// Malformed or semantically invalid input.
	http.StatusBadRequest:          codes.InvalidArgument,
	http.StatusUnprocessableEntity: codes.InvalidArgument,

	// AuthN / AuthZ.
	http.StatusUnauthorized: codes.Unauthenticated,
	http.StatusForbidden:    codes.PermissionDenied,

	// Resource state. gRPC has no 410; NotFound is the closest practical
	// choice for Gone.
	http.StatusNotFound: codes.NotFound,
	http.StatusGone:     codes.NotFound,

	// Protocol surface the server does not serve.
	http.StatusMethodNotAllowed: codes.Unimplemented,
	http.StatusNotImplemented:   codes.Unimplemented,

	// Preconditions and timing.
	http.StatusPreconditionFailed:   codes.FailedPrecondition,
	http.StatusPreconditionRequired: codes.FailedPrecondition,
	http.StatusTooEarly:             codes.FailedPrecondition,

	// Conflicting update/action (optimistic locking, races).
	http.StatusConflict: codes.Aborted,

	// Range outside the resource's bounds.
	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,

	// Rate limit / quota hit.
	http.StatusTooManyRequests: codes.ResourceExhausted,

	// Time budgets, client-side and upstream.
	http.StatusRequestTimeout: codes.DeadlineExceeded,
	http.StatusGatewayTimeout: codes.DeadlineExceeded,

	// Note: 499 is a non-standard but widely used code (nginx) for
	// "client closed request"; Canceled is its canonical gRPC twin.
	499: codes.Canceled,

	// Server-side failures and availability.
	http.StatusInternalServerError: codes.Internal,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
}

// GRPCCode projects an HTTP status onto a gRPC code.
//
// Resolution order:
//  1. exact entry in the built-in table above;
//  2. class fallback: any other 4xx -> InvalidArgument, any other 5xx -> Internal;
//  3. anything that is not an error status at all -> Unknown.
func GRPCCode(httpStatus int) codes.Code {
	if c, ok := grpcByHTTP[httpStatus]; ok {
		return c
	}
	switch {
	case IsClientError(httpStatus):
		return codes.InvalidArgument
	case IsServerError(httpStatus):
		return codes.Internal
	default:
		return codes.Unknown
	}
}
