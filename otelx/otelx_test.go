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

package otelx

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/herrors/apis"
)

var (
	testTraceID = trace.TraceID{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19}
	testSpanID  = trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
)

func tracedContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    testTraceID,
		SpanID:     testSpanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestTraceAndSpanIDs(t *testing.T) {
	ctx := tracedContext()
	if got := TraceID(ctx); got != "0a0b0c0d0e0f10111213141516171819" {
		t.Fatalf("TraceID = %q", got)
	}
	if got := SpanID(ctx); got != "0102030405060708" {
		t.Fatalf("SpanID = %q", got)
	}
	if got := TraceID(context.Background()); got != "" {
		t.Fatalf("TraceID without a trace = %q, want empty", got)
	}
	if got := SpanID(context.Background()); got != "" {
		t.Fatalf("SpanID without a trace = %q, want empty", got)
	}
}

func TestAnnotate(t *testing.T) {
	out := apis.Output{StatusCode: 500, Payload: apis.Payload{Message: "boom"}}

	got := Annotate(tracedContext(), out)
	if got.Payload.Extra["traceId"] != "0a0b0c0d0e0f10111213141516171819" {
		t.Fatalf("traceId extra = %v", got.Payload.Extra["traceId"])
	}
	if out.Payload.Extra != nil {
		t.Fatalf("Annotate mutated its input: %v", out.Payload.Extra)
	}

	got = Annotate(context.Background(), out)
	if got.Payload.Extra != nil {
		t.Fatalf("Annotate without a trace added extras: %v", got.Payload.Extra)
	}
}

func TestRecord_NoRecordingSpan(t *testing.T) {
	// no-op, not a panic, for both error and non-error values
	Record(context.Background(), errors.New("boom"), apis.Output{StatusCode: 500})
	Record(tracedContext(), "payload", apis.Output{StatusCode: 502})
}
