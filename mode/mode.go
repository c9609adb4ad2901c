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

import (
	"os"
	"strings"
	"sync/atomic"
)

// Mode is the environment-derived rendering profile. It controls how much
// an error record discloses at a boundary; it is a property of the process
// environment, never of an individual request.
type Mode uint8

const (
	// Prod discloses the minimum: kind, code, non-redacted message, and
	// fields explicitly cleared for disclosure.
	Prod Mode = iota

	// Local discloses everything. The developer terminal is trusted.
	Local

	// Staging is the semi-trusted middle ground: bounded cause chains and
	// hash/last4-masked fields are acceptable, raw secrets are not.
	Staging
)

// Environment variables consulted by Resolve.
const (
	// EnvMode overrides resolution entirely when set to a recognized value.
	EnvMode = "ERRWIRE_MODE"

	// EnvOrchestrationMarker is the presence marker every kubelet injects;
	// any value means the process runs under orchestration and must treat
	// its output as production-facing.
	EnvOrchestrationMarker = "KUBERNETES_SERVICE_HOST"
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Prod:
		return "prod"
	case Local:
		return "local"
	case Staging:
		return "staging"
	}
	return "prod"
}

// MinVisibility returns the diagnostics tier floor for the mode, expressed
// as the numeric ordering shared with diag.Visibility (0 dev-only,
// 1 internal, 2 public).
func (m Mode) MinVisibility() uint8 {
	switch m {
	case Local:
		return 0
	case Staging:
		return 1
	default:
		return 2
	}
}

// active caches the resolved mode process-wide: 0 means unresolved, any
// other value is Mode+1. Single writer (whichever goroutine resolves
// first), many readers; derived only from immutable environment state, so
// a rare double resolution computes the same value.
var active atomic.Uint32

// Active returns the process display mode, resolving it on first call and
// serving the cached value thereafter. This sits on the error hot path, so
// repeated environment lookups are deliberately avoided.
func Active() Mode {
	if v := active.Load(); v != 0 {
		return Mode(v - 1)
	}
	m := Resolve()
	active.Store(uint32(m) + 1)
	return m
}

// Resolve computes the display mode from the environment without touching
// the cache. Priority order:
//
//  1. explicit ERRWIRE_MODE override, when recognized;
//  2. orchestration marker present -> Prod;
//  3. build-mode fallback (dev build tag -> Local, otherwise Prod).
//
// Unrecognized override values fall through to the next step rather than
// failing: a typo in an env var must not change disclosure semantics
// unpredictably.
func Resolve() Mode {
	if m, ok := parseOverride(os.Getenv(EnvMode)); ok {
		return m
	}
	if os.Getenv(EnvOrchestrationMarker) != "" {
		return Prod
	}
	return buildFallback
}

// parseOverride maps the accepted override spellings onto modes.
func parseOverride(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return Prod, true
	case "local", "dev", "development":
		return Local, true
	case "staging", "stage":
		return Staging, true
	}
	return Prod, false
}

// reset clears the cache. Test harness use only.
func reset() {
	active.Store(0)
}
