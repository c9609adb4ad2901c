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

package mode

import "testing"

func TestParseOverride(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"prod", Prod, true},
		{"production", Prod, true},
		{"local", Local, true},
		{"dev", Local, true},
		{"development", Local, true},
		{"staging", Staging, true},
		{"stage", Staging, true},
		{"  STAGING  ", Staging, true},
		{"Prod", Prod, true},
		{"", Prod, false},
		{"qa", Prod, false},
		{"produtcion", Prod, false}, // typos fall through, never guess
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseOverride(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("parseOverride(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolve_OverrideWinsOverMarker(t *testing.T) {
	t.Setenv(EnvMode, "local")
	t.Setenv(EnvOrchestrationMarker, "10.0.0.1")
	if got := Resolve(); got != Local {
		t.Fatalf("Resolve() = %v, want Local (override beats marker)", got)
	}
}

func TestResolve_MarkerForcesProd(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvOrchestrationMarker, "10.0.0.1")
	if got := Resolve(); got != Prod {
		t.Fatalf("Resolve() = %v, want Prod under orchestration", got)
	}
}

func TestResolve_UnrecognizedOverrideFallsThrough(t *testing.T) {
	t.Setenv(EnvMode, "bananas")
	t.Setenv(EnvOrchestrationMarker, "10.0.0.1")
	if got := Resolve(); got != Prod {
		t.Fatalf("Resolve() = %v, want Prod (bad override must not count)", got)
	}
}

func TestResolve_BuildFallback(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvOrchestrationMarker, "")
	if got := Resolve(); got != buildFallback {
		t.Fatalf("Resolve() = %v, want build fallback %v", got, buildFallback)
	}
}

func TestActive_CachesFirstResolution(t *testing.T) {
	reset()
	t.Cleanup(reset)

	t.Setenv(EnvMode, "staging")
	if got := Active(); got != Staging {
		t.Fatalf("Active() = %v, want Staging", got)
	}

	// Environment changes after first resolution are ignored.
	t.Setenv(EnvMode, "local")
	if got := Active(); got != Staging {
		t.Fatalf("Active() after env change = %v, want cached Staging", got)
	}

	reset()
	if got := Active(); got != Local {
		t.Fatalf("Active() after reset = %v, want Local", got)
	}
}

func TestMinVisibility(t *testing.T) {
	tests := []struct {
		m    Mode
		want uint8
	}{
		{Local, 0},
		{Staging, 1},
		{Prod, 2},
	}
	for _, tt := range tests {
		if got := tt.m.MinVisibility(); got != tt.want {
			t.Fatalf("%v.MinVisibility() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestMode_String(t *testing.T) {
	if Prod.String() != "prod" || Local.String() != "local" || Staging.String() != "staging" {
		t.Fatalf("mode names drifted: %q %q %q", Prod, Local, Staging)
	}
}
