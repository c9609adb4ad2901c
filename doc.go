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

// Package errwire is a structured-error runtime: an error record carrying a
// stable machine code, a semantic kind, typed redactable metadata, advisory
// diagnostics and a causal chain, together with environment-sensitive
// rendering and idempotent telemetry dispatch.
//
// Records are built with E or the per-kind constructors, enriched through
// copy-on-write WithX methods, and consumed at a boundary by the render,
// httpx or grpcx packages, or by the protocol mapping registry. Telemetry
// (a counter increment and a structured event) fires exactly once per
// meaningful state, gated by lock-free dirty flags.
//
// Subpackages:
//
//	code      machine codes and the built-in catalog
//	kind      closed semantic categories with canonical default codes
//	metadata  typed ordered fields with per-field redaction
//	diag      hints, suggestions, doc links with visibility tiers
//	mode      Prod/Local/Staging display-mode resolution
//	render    per-mode rendering (JSON for Prod/Staging, text for Local)
//	telemetry counter and event sinks, backtrace toggle
//	apis      public contracts for adapters
//	registry  (code, kind) -> HTTP/gRPC/problem-type mapping
//	httpx     RFC 9457 problem-details responses
//	grpcx     gRPC status conversion and interceptor
package errwire
