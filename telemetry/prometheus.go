/*
   Copyright 2025 The Errwire Authors

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

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromCounter is a CounterSink backed by a Prometheus counter vector with
// "code" and "kind" labels.
type PromCounter struct {
	vec *prometheus.CounterVec
}

var _ CounterSink = (*PromCounter)(nil)

// NewPromCounter builds the counter vector and registers it with reg
// (pass prometheus.DefaultRegisterer for the usual global registry).
// Re-registering the same collector reuses the existing one, so repeated
// wiring in tests or multi-init setups is harmless.
func NewPromCounter(reg prometheus.Registerer) (*PromCounter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "errwire",
		Name:      "errors_total",
		Help:      "Total error records dispatched, by code and kind.",
	}, []string{"code", "kind"})

	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			vec = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromCounter{vec: vec}, nil
}

// Inc implements CounterSink.
func (c *PromCounter) Inc(code, kind string) {
	c.vec.WithLabelValues(code, kind).Inc()
}
