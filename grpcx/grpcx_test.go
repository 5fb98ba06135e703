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
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/mapper"
)

func invoke(t *testing.T, h grpc.UnaryHandler, opts ...Option) (any, error) {
	t.Helper()
	ic := UnaryServerInterceptor(mapper.New().Build(), opts...)
	return ic(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, h)
}

func TestInterceptor_Success(t *testing.T) {
	resp, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("resp = %v, want %q", resp, "ok")
	}
}

func TestInterceptor_FallbackError(t *testing.T) {
	resp, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		return nil, errors.New("db exploded")
	}, WithDomain("checkout"))
	if resp != nil {
		t.Fatalf("resp = %v, want nil", resp)
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want %v", st.Code(), codes.Internal)
	}
	if st.Message() != mapper.GenericMessage {
		t.Fatalf("message = %q, want the generic message", st.Message())
	}

	info, ok := ExtractInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if info.Domain != "checkout" {
		t.Fatalf("domain = %q, want %q", info.Domain, "checkout")
	}
	if info.Metadata["httpStatus"] != "500" {
		t.Fatalf("httpStatus = %q, want %q", info.Metadata["httpStatus"], "500")
	}

	payload, ok := ExtractPayload(err)
	if !ok {
		t.Fatalf("payload detail missing")
	}
	if got := payload.Fields["message"].GetStringValue(); got != mapper.GenericMessage {
		t.Fatalf("payload message = %q, want the generic message", got)
	}
}

func TestInterceptor_ClassifiedError(t *testing.T) {
	_, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		return nil, herrors.E(404, "no such user",
			herrors.WithDataOption("code", "USER_NOT_FOUND"),
			herrors.WithNameOption("NotFoundError"))
	})

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want %v", st.Code(), codes.NotFound)
	}
	if st.Message() != "no such user" {
		t.Fatalf("message = %q, want %q", st.Message(), "no such user")
	}

	info, ok := ExtractInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if info.Reason != "USER_NOT_FOUND" {
		t.Fatalf("reason = %q, want %q", info.Reason, "USER_NOT_FOUND")
	}
	if info.Metadata["httpStatus"] != "404" {
		t.Fatalf("httpStatus = %q, want %q", info.Metadata["httpStatus"], "404")
	}
	if info.Metadata["name"] != "NotFoundError" {
		t.Fatalf("name = %q, want %q", info.Metadata["name"], "NotFoundError")
	}
}

func TestInterceptor_StatusPassthrough(t *testing.T) {
	native := gstatus.Error(codes.AlreadyExists, "native status")
	_, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		return nil, native
	})

	if !errors.Is(err, native) {
		t.Fatalf("err = %v, want the handler's status unchanged", err)
	}
	st, _ := gstatus.FromError(err)
	if st.Code() != codes.AlreadyExists || st.Message() != "native status" {
		t.Fatalf("status = %v %q, want AlreadyExists %q", st.Code(), st.Message(), "native status")
	}
	if _, ok := ExtractInfo(err); ok {
		t.Fatalf("passthrough status must not grow details")
	}
}

func TestInterceptor_PanicRecovery(t *testing.T) {
	resp, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		panic("kaboom")
	})
	if resp != nil {
		t.Fatalf("resp = %v, want nil", resp)
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want %v", st.Code(), codes.Internal)
	}
	if st.Message() != mapper.GenericMessage {
		t.Fatalf("message = %q, want the generic message", st.Message())
	}
	info, ok := ExtractInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo detail missing")
	}
	if info.Metadata["httpStatus"] != "500" {
		t.Fatalf("httpStatus = %q, want %q", info.Metadata["httpStatus"], "500")
	}
}

func TestInterceptor_PanicNil(t *testing.T) {
	// panic(nil) surfaces as *runtime.PanicNilError, so recovery still
	// produces an Internal status.
	_, err := invoke(t, func(ctx context.Context, req any) (any, error) {
		panic(nil)
	})
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want %v", st.Code(), codes.Internal)
	}
}

func TestExtract_NonStatusError(t *testing.T) {
	if _, ok := ExtractInfo(errors.New("plain")); ok {
		t.Fatalf("ExtractInfo on a plain error must report false")
	}
	if _, ok := ExtractInfo(nil); ok {
		t.Fatalf("ExtractInfo(nil) must report false")
	}
	if _, ok := ExtractPayload(errors.New("plain")); ok {
		t.Fatalf("ExtractPayload on a plain error must report false")
	}
	if _, ok := ExtractPayload(nil); ok {
		t.Fatalf("ExtractPayload(nil) must report false")
	}
}
