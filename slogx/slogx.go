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

// Package slogx bridges the mapping pipeline to log/slog.
package slogx

import (
	"fmt"
	"log/slog"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/mapper"
)

// Observer returns an unknown-error observer that logs every raw value
// reaching the generic fallback at error level. A nil logger falls back
// to slog.Default.
func Observer(l *slog.Logger) mapper.Observer {
	if l == nil {
		l = slog.Default()
	}
	return func(v any) {
		l.Error("unclassified error",
			slog.String("kind", fmt.Sprintf("%T", v)),
			slog.Any("value", v),
		)
	}
}

// Attrs flattens a descriptor into slog attributes. Empty fields are
// omitted so log lines stay compact.
func Attrs(d apis.ErrorDescriptor) []slog.Attr {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.Int("status_code", d.StatusCode))
	if d.Code != "" {
		attrs = append(attrs, slog.String("code", d.Code))
	}
	if d.Name != "" {
		attrs = append(attrs, slog.String("name", d.Name))
	}
	if d.Message != "" {
		attrs = append(attrs, slog.String("message", d.Message))
	}
	if d.Kind != "" {
		attrs = append(attrs, slog.String("kind", d.Kind))
	}
	if d.Generic {
		attrs = append(attrs, slog.Bool("generic", true))
	}
	return attrs
}
