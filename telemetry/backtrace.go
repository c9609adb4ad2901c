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
	"os"
	"strings"
	"sync/atomic"
)

// EnvBacktrace toggles lazy backtrace capture on error records. Absent,
// "0", "off" or "false" mean disabled; any other non-empty value enables
// capture.
const EnvBacktrace = "ERRWIRE_BACKTRACE"

// backtraceState caches the resolved toggle: 0 unresolved, 1 on, 2 off.
// Same single-writer-many-readers pattern as the display-mode cache.
var backtraceState atomic.Int32

// BacktraceEnabled reports whether records should capture backtraces on
// first telemetry dispatch. The environment is consulted once per process.
func BacktraceEnabled() bool {
	switch backtraceState.Load() {
	case 1:
		return true
	case 2:
		return false
	}
	on := ParseToggle(os.Getenv(EnvBacktrace))
	if on {
		backtraceState.Store(1)
	} else {
		backtraceState.Store(2)
	}
	return on
}

// ParseToggle implements the shared toggle grammar: any non-empty value
// counts as on except the explicit negatives "0", "off" and "false"
// (case-insensitive).
func ParseToggle(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "0", "off", "false":
		return false
	}
	return true
}

// resetBacktrace clears the toggle cache. Test harness use only.
func resetBacktrace() {
	backtraceState.Store(0)
}
