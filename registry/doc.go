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

// Package registry implements the protocol mapping registry: an immutable,
// build-time-known table from (code, kind) to HTTP status, gRPC status and
// RFC 9457 problem-type URI.
//
// The built-in tables cover the entire code catalog; a test asserts this,
// because an unmapped code is a programming error to catch before shipping,
// not a runtime condition to handle defensively. Hosts extend or adjust the
// tables with Options at construction; configuration mistakes (such as an
// out-of-range HTTP status) are reported as Validation-kind error records —
// the runtime eats its own taxonomy.
package registry
