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
	"fmt"
	"strings"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/apis"
)

// Classifier inspects a raw value and either recognizes it, returning the
// classified error, or returns nil to pass it on to the next classifier.
type Classifier func(v any) *herrors.Error

// Observer is notified of raw values that reached the generic fallback
// without being recognized by any classifier. Observers run for their
// side effects (logging, metrics) and must not panic.
type Observer func(v any)

// Transformer rewrites the output accumulated so far. It receives the raw
// value and the classified error alongside the output and returns the
// output to hand to the next transformer. Transformers must be pure: same
// inputs, same output, no side effects.
type Transformer func(out apis.Output, v any, e *herrors.Error) apis.Output

// Func is the mapping pipeline reduced to a plain function, for callers
// that want to pass it around without depending on the Mapper interface.
type Func func(v any) apis.Output

// Config carries the two presentation flags consulted when the built-in
// transformer chain is assembled. The zero value is the production
// posture: no stack traces, unknown-error messages suppressed.
type Config struct {
	// ShowStackTrace enables the stack built-in, which copies a stack
	// trace into payload.stack when one is available.
	ShowStackTrace bool

	// ShowUnknownErrorMessage disables the suppress built-in, letting the
	// derived message of generic fallback 500s reach the output verbatim.
	ShowUnknownErrorMessage bool
}

// Classification sources reported by Explain.
const (
	sourceClassified = "classified"
	sourceClassifier = "classifier"
	sourceFallback   = "fallback"
)

// mapper is the frozen pipeline produced by Build. All fields are
// written once and never mutated afterwards, so Map and Explain are safe
// for concurrent use without locking.
type mapper struct {
	cfg         Config
	classifiers []Classifier
	observers   []Observer
	builtins    []Transformer
	chain       []Transformer
}

var _ apis.Mapper = (*mapper)(nil)

// Map converts a raw value into a normalized HTTP error output. It
// accepts anything: errors, recovered panic payloads, already classified
// errors. It never fails and never panics on its own; a panic escaping
// Map comes from a misbehaving user transformer and indicates a
// configuration bug.
func (m *mapper) Map(v any) apis.Output {
	e, _, _ := m.classify(v, true)
	out := e.Output()
	for _, fn := range m.builtins {
		out = fn(out, v, e)
	}
	for _, fn := range m.chain {
		out = fn(out, v, e)
	}
	return out
}

// classify resolves the raw value to a classified error and reports where
// the classification came from. When notify is false the unknown-error
// observers are not fired, which is how Explain stays side-effect free.
func (m *mapper) classify(v any, notify bool) (e *herrors.Error, source string, index int) {
	if ce, ok := herrors.From(v); ok {
		return ce, sourceClassified, -1
	}
	for i, fn := range m.classifiers {
		if ce := fn(v); ce != nil {
			return ce, sourceClassifier, i
		}
	}
	if notify {
		for _, fn := range m.observers {
			fn(v)
		}
	}
	return herrors.Wrap(v), sourceFallback, -1
}

// Explain reports how the raw value would be mapped, one decision per
// line. It follows the exact same resolution path as Map but never
// notifies observers, so it is safe to call on live traffic.
func (m *mapper) Explain(v any) string {
	var sb strings.Builder
	e, source, index := m.classify(v, false)

	fmt.Fprintf(&sb, "raw=%T\n", v)
	if source == sourceClassifier {
		fmt.Fprintf(&sb, "classify: source=classifier[%d] status=%d generic=%t\n", index, e.Status, e.Generic())
	} else {
		fmt.Fprintf(&sb, "classify: source=%s status=%d generic=%t\n", source, e.Status, e.Generic())
	}
	fmt.Fprintf(&sb, "observers: registered=%d notify=%t\n", len(m.observers), source == sourceFallback)

	out := e.Output()
	out = m.explainStack(&sb, out, v, e)
	out = m.explainCode(&sb, out, v, e)
	out = m.explainSuppress(&sb, out, v, e)
	for i, fn := range m.chain {
		out = fn(out, v, e)
		fmt.Fprintf(&sb, "transform: user[%d] -> applied\n", i)
	}
	fmt.Fprintf(&sb, "output: status=%d message=%q\n", out.StatusCode, out.Payload.Message)
	return sb.String()
}

func (m *mapper) explainStack(sb *strings.Builder, out apis.Output, v any, e *herrors.Error) apis.Output {
	if !m.cfg.ShowStackTrace {
		sb.WriteString("transform: stack -> disabled\n")
		return out
	}
	out = stackTransformer(out, v, e)
	if out.Payload.Stack != "" {
		sb.WriteString("transform: stack -> payload.stack=set\n")
	} else {
		sb.WriteString("transform: stack -> none\n")
	}
	return out
}

func (m *mapper) explainCode(sb *strings.Builder, out apis.Output, v any, e *herrors.Error) apis.Output {
	out = codeTransformer(out, v, e)
	if out.Payload.Code != "" {
		fmt.Fprintf(sb, "transform: code -> payload.code=%q\n", out.Payload.Code)
	} else {
		sb.WriteString("transform: code -> none\n")
	}
	return out
}

func (m *mapper) explainSuppress(sb *strings.Builder, out apis.Output, v any, e *herrors.Error) apis.Output {
	if m.cfg.ShowUnknownErrorMessage {
		sb.WriteString("transform: suppress -> disabled\n")
		return out
	}
	if suppressible(e) {
		sb.WriteString("transform: suppress -> payload.message=generic\n")
	} else {
		sb.WriteString("transform: suppress -> skipped\n")
	}
	return suppressTransformer(out, v, e)
}
