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

// Package promx bridges the mapping pipeline to Prometheus metrics.
package promx

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/herrors/mapper"
)

// NewUnknownErrorsCounter creates the herrors_unknown_errors_total
// counter, partitioned by the dynamic type of the raw value, and
// registers it with r when r is non-nil.
func NewUnknownErrorsCounter(r prometheus.Registerer) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "herrors",
		Name:      "unknown_errors_total",
		Help:      "Raw values that reached the generic fallback without being classified.",
	}, []string{"kind"})
	if r != nil {
		r.MustRegister(c)
	}
	return c
}

// Observer returns an unknown-error observer that increments c, labeled
// with the dynamic type of the raw value.
func Observer(c *prometheus.CounterVec) mapper.Observer {
	return func(v any) {
		c.WithLabelValues(fmt.Sprintf("%T", v)).Inc()
	}
}
