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

// Package otelx bridges mapped outputs to OpenTelemetry spans.
package otelx

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/herrors/apis"
)

// TraceID returns the hex trace id of the span in ctx, or "" when the
// context carries no valid trace.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// SpanID returns the hex span id of the span in ctx, or "" when the
// context carries no valid span.
func SpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasSpanID() {
		return ""
	}
	return sc.SpanID().String()
}

// Annotate adds the current trace id to the output payload as a
// "traceId" extra, so clients can quote it when reporting problems. The
// output is returned unchanged when the context carries no valid trace.
func Annotate(ctx context.Context, out apis.Output) apis.Output {
	id := TraceID(ctx)
	if id == "" {
		return out
	}
	out.Payload = out.Payload.WithExtra("traceId", id)
	return out
}

// Record marks the span in ctx with the mapped outcome: the final status
// code and raw value type as attributes, and for 5xx outputs an error
// span status with the raw value recorded on the span.
func Record(ctx context.Context, v any, out apis.Output) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("http.response.status_code", out.StatusCode),
		attribute.String("error.type", fmt.Sprintf("%T", v)),
	)
	if out.StatusCode < 500 {
		return
	}
	span.SetStatus(codes.Error, out.Payload.Message)
	if err, ok := v.(error); ok {
		span.RecordError(err)
	} else {
		span.RecordError(fmt.Errorf("%v", v))
	}
}
