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

package registry

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"

	"errwire.dev/errwire"
	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
)

// Every code the record can carry must resolve through the built-in tables.
// An unmapped code is a programming error caught here, not handled at
// lookup time.
func TestDefaultTables_ExhaustiveOverCatalog(t *testing.T) {
	for _, c := range code.Builtin() {
		if _, ok := defaultHTTP[c]; !ok {
			t.Errorf("catalog code %q missing from defaultHTTP", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Errorf("catalog code %q missing from defaultGRPC", c)
		}
	}
	for _, k := range kind.All() {
		if _, ok := kindHTTP[k]; !ok {
			t.Errorf("kind %v missing from kindHTTP", k)
		}
		if _, ok := kindGRPC[k]; !ok {
			t.Errorf("kind %v missing from kindGRPC", k)
		}
	}
}

func TestRegistry_DefaultProjections(t *testing.T) {
	m := MustNew()
	tests := []struct {
		c    code.Code
		k    kind.Kind
		http int
		grpc codes.Code
	}{
		{code.NotFound, kind.NotFound, http.StatusNotFound, codes.NotFound},
		{code.Validation, kind.Validation, http.StatusBadRequest, codes.InvalidArgument},
		{code.TokenExpired, kind.Unauthorized, http.StatusUnauthorized, codes.Unauthenticated},
		{code.Deadlock, kind.Database, http.StatusConflict, codes.Aborted},
		{code.QuotaExceeded, kind.RateLimited, http.StatusTooManyRequests, codes.ResourceExhausted},
		{code.UpstreamUnavailable, kind.Network, http.StatusServiceUnavailable, codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			if got := m.HTTPStatus(tt.c, tt.k); got != tt.http {
				t.Fatalf("HTTPStatus = %d, want %d", got, tt.http)
			}
			if got := m.GRPCStatus(tt.c, tt.k); got != tt.grpc {
				t.Fatalf("GRPCStatus = %v, want %v", got, tt.grpc)
			}
		})
	}
}

func TestRegistry_ResolutionOrder(t *testing.T) {
	m := MustNew(
		WithHTTPOverride(code.NotFound, http.StatusGone),
		WithGRPCOverride(code.NotFound, codes.FailedPrecondition),
	)

	// Override beats the built-in table.
	if got := m.HTTPStatus(code.NotFound, kind.NotFound); got != http.StatusGone {
		t.Fatalf("override ignored: %d", got)
	}
	if got := m.GRPCStatus(code.NotFound, kind.NotFound); got != codes.FailedPrecondition {
		t.Fatalf("grpc override ignored: %v", got)
	}

	// A code the tables never saw degrades to its category, not to 500.
	custom := code.MustParse("pg_conn_refused")
	if got := m.HTTPStatus(custom, kind.Database); got != http.StatusInternalServerError {
		t.Fatalf("kind fallback = %d", got)
	}
	if got := m.HTTPStatus(custom, kind.RateLimited); got != http.StatusTooManyRequests {
		t.Fatalf("kind fallback = %d, want 429", got)
	}

	// Unknown code plus unknown kind hits the ultimate fallback.
	if got := m.HTTPStatus(custom, kind.Kind(99)); got != http.StatusInternalServerError {
		t.Fatalf("ultimate fallback = %d", got)
	}
	if got := m.GRPCStatus(custom, kind.Kind(99)); got != codes.Internal {
		t.Fatalf("ultimate grpc fallback = %v", got)
	}
}

func TestRegistry_ProblemType(t *testing.T) {
	m := MustNew(
		WithProblemBase("https://api.example.test/problems/"),
		WithProblemType(code.Deadlock, "https://api.example.test/kb/deadlocks"),
	)

	if got := m.ProblemType(code.NotFound, kind.NotFound); got != "https://api.example.test/problems/not_found" {
		t.Fatalf("generated problem type = %q", got)
	}
	if got := m.ProblemType(code.Deadlock, kind.Database); got != "https://api.example.test/kb/deadlocks" {
		t.Fatalf("explicit problem type = %q", got)
	}
}

func TestRegistry_StatusIsConsistent(t *testing.T) {
	m := MustNew()
	st := m.Status(code.RateLimited, kind.RateLimited)
	if st.HTTP != m.HTTPStatus(code.RateLimited, kind.RateLimited) ||
		st.GRPC != m.GRPCStatus(code.RateLimited, kind.RateLimited) ||
		st.ProblemType != m.ProblemType(code.RateLimited, kind.RateLimited) {
		t.Fatalf("Status disagrees with individual lookups: %+v", st)
	}
}

func TestNew_RejectsOutOfRangeStatus(t *testing.T) {
	_, err := New(WithHTTPOverride(code.Internal, 99))
	if err == nil {
		t.Fatalf("expected configuration error for status 99")
	}

	// The registry reports its own mistakes through the record taxonomy.
	var rec *errwire.Error
	if !errors.As(err, &rec) {
		t.Fatalf("error is not a record: %T", err)
	}
	if rec.Kind != kind.Validation {
		t.Fatalf("config error kind = %v, want Validation", rec.Kind)
	}
	if v, ok := rec.Meta.Get("status"); !ok || v.String() != "99" {
		t.Fatalf("config error missing the offending status: %v", rec.Meta)
	}
	if v, ok := rec.Meta.Get("code"); !ok || v.String() != "internal" {
		t.Fatalf("config error missing the offending code: %v", rec.Meta)
	}

	if _, err := New(WithKindHTTPDefault(kind.Cache, 600)); err == nil {
		t.Fatalf("expected configuration error for kind status 600")
	}
}

func TestMustNew_PanicsOnBadConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew should panic on invalid configuration")
		}
	}()
	_ = MustNew(WithHTTPOverride(code.Timeout, 1000))
}

func TestNew_FrozenAgainstLaterOptionsReuse(t *testing.T) {
	// Two registries built with different options must not share tables.
	a := MustNew()
	b := MustNew(WithHTTPOverride(code.NotFound, http.StatusGone))

	if a.HTTPStatus(code.NotFound, kind.NotFound) != http.StatusNotFound {
		t.Fatalf("override leaked between registries")
	}
	if b.HTTPStatus(code.NotFound, kind.NotFound) != http.StatusGone {
		t.Fatalf("override lost on its own registry")
	}
}
