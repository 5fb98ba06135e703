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

package grpcx

import (
	"context"
	"encoding/json"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/status"
)

// Option customizes the interceptor.
type Option func(*options)

type options struct {
	domain string
}

// WithDomain sets the logical error domain (usually the service name)
// embedded into the ErrorInfo detail of produced statuses.
func WithDomain(domain string) Option {
	return func(o *options) {
		o.domain = domain
	}
}

// UnaryServerInterceptor returns a gRPC interceptor that maps handler
// failures through the provided mapper.
//
// Errors that already carry a gRPC status pass through unchanged, so
// handlers speaking native gRPC keep full control. Everything else,
// including recovered handler panics, goes through the mapper: the final
// output's status code is projected onto a gRPC code and the payload is
// attached as details, an errdetails.ErrorInfo with the code and domain
// plus a structpb.Struct with the full payload.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		panicked := true
		defer func() {
			if panicked {
				resp, err = nil, statusErr(m, recover(), o.domain)
			}
		}()

		resp, err = handler(ctx, req)
		panicked = false
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			// Already a gRPC status. Not ours to rewrite.
			return nil, err
		}
		return nil, statusErr(m, err, o.domain)
	}
}

// statusErr maps the raw value and converts the output into a gRPC
// status error with details. If detail attachment fails, the bare status
// is returned.
func statusErr(m apis.Mapper, v any, domain string) error {
	out := m.Map(v)
	base := gstatus.New(status.GRPCCode(out.StatusCode), out.Payload.Message)

	info := &errdetails.ErrorInfo{
		Reason: out.Payload.Code,
		Domain: domain,
		Metadata: map[string]string{
			"httpStatus": strconv.Itoa(out.StatusCode),
		},
	}
	if out.Payload.Name != "" {
		info.Metadata["name"] = out.Payload.Name
	}

	var with *gstatus.Status
	var err error
	if payload, perr := payloadStruct(out.Payload); perr == nil {
		with, err = base.WithDetails(info, payload)
	} else {
		with, err = base.WithDetails(info)
	}
	if err != nil {
		return base.Err()
	}
	return with.Err()
}

// payloadStruct renders the payload through its JSON form into a proto
// struct, so extras survive with their wire names.
func payloadStruct(p apis.Payload) (*structpb.Struct, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// ExtractInfo pulls the ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractPayload pulls the payload struct detail out of a gRPC error, if
// present.
func ExtractPayload(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if payload, ok := d.(*structpb.Struct); ok {
			return payload, true
		}
	}
	return nil, false
}
