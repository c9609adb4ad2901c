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

// Package telemetry defines the sinks the error runtime dispatches into:
// a counter sink keyed by (code, kind) and a structured event sink with an
// "is anyone listening" query.
//
// A Prometheus-backed counter and a slog-backed event sink ship in-package;
// hosts install them (or their own implementations) once at startup via
// SetCounter and SetEvents. The package also owns the process-wide cached
// ERRWIRE_BACKTRACE toggle consulted by lazy backtrace capture.
package telemetry
