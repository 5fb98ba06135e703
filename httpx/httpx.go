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

package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"dirpx.dev/herrors/adapter"
	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/otelx"
	"dirpx.dev/herrors/slogx"
)

// HeaderCorrelationID is the correlation header echoed on every error
// response. Incoming values are propagated; missing ones are generated.
const HeaderCorrelationID = "X-Correlation-ID"

// Meta carries extra response context that the HTTP layer can add on top
// of the mapped output. All fields are optional and typically come from
// request context, rate-limiter output, or router-level logic.
type Meta struct {
	// Correlation overrides the correlation id. When empty, the incoming
	// request header is propagated, or a fresh uuid is generated.
	Correlation string

	// RetryAfterSeconds emits a Retry-After header when positive.
	RetryAfterSeconds int
}

// Writer turns arbitrary raw values into HTTP error responses using the
// provided mapper.
type Writer struct {
	// Mapper converts the raw value into the response output. Required.
	Mapper apis.Mapper

	// Logger, when set, receives one error-level record per 5xx response.
	Logger *slog.Logger

	// Domain tags log records so shared dashboards can tell services
	// apart. Optional.
	Domain string
}

// Write maps the raw value and writes it to the response writer: the
// output's headers first, then Content-Type, correlation and Retry-After
// headers, then the status line, then the payload as a JSON body.
//
// When the request carries an active trace, the trace id is added to the
// payload as a "traceId" extra and the span is marked with the outcome.
// 5xx responses are additionally logged through Logger when one is set.
//
// No automatic redaction or filtering is performed here: whatever the
// mapped output contains is exposed as-is. Suppression of unknown-error
// internals is the mapper's job, so production writers should be built
// from a production-configured mapper.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, v any, meta Meta) {
	if v == nil {
		return
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}

	out := w.Mapper.Map(v)
	out = otelx.Annotate(ctx, out)

	h := rw.Header()
	for name, values := range out.Headers {
		for _, value := range values {
			h.Add(name, value)
		}
	}
	h.Set("Content-Type", "application/json")

	correlation := meta.Correlation
	if correlation == "" && r != nil {
		correlation = r.Header.Get(HeaderCorrelationID)
	}
	if correlation == "" {
		correlation = uuid.New().String()
	}
	h.Set(HeaderCorrelationID, correlation)

	if meta.RetryAfterSeconds > 0 {
		h.Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}

	rw.WriteHeader(out.StatusCode)
	b, _ := json.Marshal(out.Payload)
	_, _ = rw.Write(b)

	otelx.Record(ctx, v, out)
	if w.Logger != nil && out.StatusCode >= http.StatusInternalServerError {
		attrs := slogx.Attrs(adapter.Describe(v, out))
		attrs = append(attrs, slog.String("correlation_id", correlation))
		if w.Domain != "" {
			attrs = append(attrs, slog.String("domain", w.Domain))
		}
		w.Logger.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
	}
}
