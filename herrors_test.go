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

package herrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/herrors/apis"
)

func TestE_Basics(t *testing.T) {
	e := E(http.StatusNotFound, "user does not exist",
		WithNameOption("NotFoundError"),
		WithDataOption("code", "user_not_found"),
	)

	if e.Status != http.StatusNotFound {
		t.Fatal("status mismatch")
	}
	if e.Name != "NotFoundError" {
		t.Fatal("name must be set")
	}
	if e.Data["code"] != "user_not_found" {
		t.Fatal("data missing")
	}
	if e.Generic() {
		t.Fatal("explicit errors must not be generic")
	}

	s := e.Error()
	wantSubs := []string{"404", "Not Found", "user does not exist"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestE_StatusCoercion(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 500},
		{42, 500},
		{200, 500},
		{399, 500},
		{400, 400},
		{404, 404},
		{599, 599},
		{600, 500},
	}
	for _, tt := range tests {
		if got := E(tt.in, "x").Status; got != tt.want {
			t.Fatalf("E(%d) status = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(http.StatusConflict, "bad").WithData("k1", 1)
	e2 := e1.WithData("k2", 2)

	if len(e1.Data) != 1 || len(e2.Data) != 2 {
		t.Fatal("data size mismatch")
	}
	if _, ok := e1.Data["k2"]; ok {
		t.Fatal("original mutated")
	}

	h1 := e1.WithHeader("Retry-After", "30")
	if len(e1.Headers) != 0 {
		t.Fatal("original headers mutated")
	}
	if h1.Headers.Get("Retry-After") != "30" {
		t.Fatal("header missing")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(http.StatusInternalServerError, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestError_WithDataMap_Merge(t *testing.T) {
	e := E(http.StatusBadRequest, "x").WithDataMap(map[string]any{"a": 1})
	e2 := e.WithDataMap(map[string]any{"b": 2, "a": 3})
	if e.Data["a"] != 1 {
		t.Fatal("original mutated")
	}
	if e2.Data["a"] != 3 || e2.Data["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestWrap_DerivesMessage(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"error", errors.New("db exploded"), "db exploded"},
		{"string", "thrown string", "thrown string"},
		{"int", 42, "42"},
		{"nil", nil, "<nil>"},
		{"typed nil", (*Error)(nil), "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Wrap(tt.in)
			if e.Status != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", e.Status)
			}
			if !e.Generic() {
				t.Fatal("wrapped values must be generic")
			}
			if e.Message != tt.want {
				t.Fatalf("message = %q, want %q", e.Message, tt.want)
			}
			if !strings.Contains(e.ErrorStack(), "goroutine") {
				t.Fatal("wrap must capture a stack")
			}
		})
	}
}

func TestWrap_ClassifiedPassesThrough(t *testing.T) {
	orig := E(http.StatusTeapot, "short and stout")
	if got := Wrap(orig); got != orig {
		t.Fatal("wrapping a classified error must return it untouched")
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	root := errors.New("root")
	e := Wrap(fmt.Errorf("query failed: %w", root))
	if !errors.Is(e, root) {
		t.Fatal("cause chain lost")
	}
}

func TestFrom(t *testing.T) {
	e := E(http.StatusForbidden, "no")

	if got, ok := From(e); !ok || got != e {
		t.Fatal("direct *Error not recognized")
	}
	wrapped := fmt.Errorf("handler: %w", e)
	if got, ok := From(wrapped); !ok || got != e {
		t.Fatal("wrapped *Error not recognized")
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatal("plain error misrecognized")
	}
	if _, ok := From("not an error"); ok {
		t.Fatal("non-error misrecognized")
	}
	if _, ok := From((*Error)(nil)); ok {
		t.Fatal("typed nil misrecognized")
	}
}

func TestStatusText_GenericPinned(t *testing.T) {
	e := Wrap(errors.New("secret database details"))
	if got := e.StatusText(); got != "Internal Server Error" {
		t.Fatalf("generic StatusText = %q, want pinned phrase", got)
	}
	if got := E(http.StatusNotFound, "x").StatusText(); got != "Not Found" {
		t.Fatalf("StatusText = %q, want %q", got, "Not Found")
	}
}

func TestOutput_Render(t *testing.T) {
	e := E(http.StatusNotFound, "", WithNameOption("NotFoundError"))
	out := e.Output()
	if out.StatusCode != http.StatusNotFound {
		t.Fatal("status mismatch")
	}
	if out.Payload.Message != "Not Found" {
		t.Fatalf("empty message must fall back to status text; got %q", out.Payload.Message)
	}
	if out.Payload.Name != "NotFoundError" {
		t.Fatal("name missing")
	}

	g := Wrap("boom").WithName("ShouldNotAppear").Output()
	if g.Payload.Name != "" {
		t.Fatal("generic output must not carry a name")
	}
	if g.Payload.Message != "boom" {
		t.Fatalf("generic output keeps derived message; got %q", g.Payload.Message)
	}
}

func TestOutput_HeadersDetached(t *testing.T) {
	e := E(http.StatusTooManyRequests, "slow down").WithHeader("Retry-After", "30")
	out := e.Output()
	out.Headers.Set("Retry-After", "60")
	if e.Headers.Get("Retry-After") != "30" {
		t.Fatal("rendered output must not share the error's header map")
	}
}

// Ensure Error exposes all the probe surfaces the pipeline relies on.
func TestError_ProbeInterfaces(t *testing.T) {
	var _ apis.StatusError = (*Error)(nil)
	var _ apis.CodedError = (*Error)(nil)
	var _ apis.StackError = (*Error)(nil)
	var _ apis.HeaderError = (*Error)(nil)

	e := E(http.StatusPaymentRequired, "pay up",
		WithDataOption("code", "PAYMENT"),
		WithHeaderOption("X-Billing", "overdue"),
	)
	if e.HTTPStatus() != http.StatusPaymentRequired {
		t.Fatal("HTTPStatus mismatch")
	}
	if e.ErrorCode() != "PAYMENT" {
		t.Fatal("ErrorCode mismatch")
	}
	if e.ErrorHeaders().Get("X-Billing") != "overdue" {
		t.Fatal("ErrorHeaders mismatch")
	}
	if E(http.StatusBadRequest, "x", WithDataOption("code", 7)).ErrorCode() != "" {
		t.Fatal("non-string code must read as no code")
	}
}

func TestWithStackOption(t *testing.T) {
	if E(http.StatusBadGateway, "x").ErrorStack() != "" {
		t.Fatal("E must not capture a stack by default")
	}
	if !strings.Contains(E(http.StatusBadGateway, "x", WithStackOption()).ErrorStack(), "goroutine") {
		t.Fatal("WithStackOption must capture a stack")
	}
}
