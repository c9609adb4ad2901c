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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromCounter_IncByLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPromCounter(reg)
	if err != nil {
		t.Fatalf("NewPromCounter: %v", err)
	}

	c.Inc("timeout", "Timeout")
	c.Inc("timeout", "Timeout")
	c.Inc("not_found", "NotFound")

	if got := testutil.ToFloat64(c.vec.WithLabelValues("timeout", "Timeout")); got != 2 {
		t.Fatalf("timeout counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.vec.WithLabelValues("not_found", "NotFound")); got != 1 {
		t.Fatalf("not_found counter = %v, want 1", got)
	}
}

func TestNewPromCounter_ReusesExistingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromCounter(reg)
	if err != nil {
		t.Fatalf("first NewPromCounter: %v", err)
	}
	b, err := NewPromCounter(reg)
	if err != nil {
		t.Fatalf("second NewPromCounter: %v", err)
	}

	a.Inc("cache", "Cache")
	b.Inc("cache", "Cache")

	if got := testutil.ToFloat64(a.vec.WithLabelValues("cache", "Cache")); got != 2 {
		t.Fatalf("counters not shared across registrations: got %v, want 2", got)
	}
}
