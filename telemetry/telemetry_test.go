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
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"off", false},
		{"OFF", false},
		{"false", false},
		{"  False  ", false},
		{"1", true},
		{"on", true},
		{"yes", true},
		{"anything", true},
	}
	for _, tt := range tests {
		if got := ParseToggle(tt.in); got != tt.want {
			t.Fatalf("ParseToggle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBacktraceEnabled_CachesFirstAnswer(t *testing.T) {
	resetBacktrace()
	t.Cleanup(resetBacktrace)

	t.Setenv(EnvBacktrace, "1")
	if !BacktraceEnabled() {
		t.Fatalf("BacktraceEnabled() = false with %s=1", EnvBacktrace)
	}

	t.Setenv(EnvBacktrace, "off")
	if !BacktraceEnabled() {
		t.Fatalf("env change after first resolution must be ignored")
	}

	resetBacktrace()
	if BacktraceEnabled() {
		t.Fatalf("BacktraceEnabled() = true after reset with %s=off", EnvBacktrace)
	}
}

func TestSetCounter_NilRestoresNop(t *testing.T) {
	t.Cleanup(func() { SetCounter(nil) })

	fake := &fakeCounter{}
	SetCounter(fake)
	Counter().Inc("timeout", "Timeout")
	if fake.total() != 1 {
		t.Fatalf("installed counter saw %d increments, want 1", fake.total())
	}

	SetCounter(nil)
	Counter().Inc("timeout", "Timeout") // must not panic, must not reach fake
	if fake.total() != 1 {
		t.Fatalf("nop counter leaked an increment to the old sink")
	}
}

type fakeCounter struct {
	incs map[string]int
}

func (f *fakeCounter) Inc(code, kind string) {
	if f.incs == nil {
		f.incs = make(map[string]int)
	}
	f.incs[code+"/"+kind]++
}

func (f *fakeCounter) total() int {
	n := 0
	for _, v := range f.incs {
		n += v
	}
	return n
}

func TestSlogSink_EmitWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSlogSink(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	sink.Emit(slog.LevelError, "db_conn_failed: connection refused",
		slog.String("code", "db_conn_failed"),
		slog.String("kind", "Database"),
	)

	out := buf.String()
	for _, want := range []string{"db_conn_failed: connection refused", "code=db_conn_failed", "kind=Database"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogSink_InterestCacheAndInvalidate(t *testing.T) {
	// Handler gated above Error: nobody is listening.
	lvl := &slog.LevelVar{}
	lvl.Set(slog.LevelError + 4)
	sink := NewSlogSink(slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: lvl})))

	if sink.Enabled(slog.LevelError) {
		t.Fatalf("Enabled() = true with handler gated above Error")
	}

	// The "no" answer is cached: re-leveling alone does not change it.
	lvl.Set(slog.LevelError)
	if sink.Enabled(slog.LevelError) {
		t.Fatalf("stale interest cache should still answer false before invalidation")
	}

	// Invalidation drops the cache; the live handler answer wins.
	sink.InvalidateInterest()
	if !sink.Enabled(slog.LevelError) {
		t.Fatalf("Enabled() = false after invalidation with listening handler")
	}
}
