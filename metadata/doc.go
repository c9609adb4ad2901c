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

// Package metadata implements the typed, ordered field store attached to
// errwire error records, together with per-field redaction policies.
//
// Fields hold values from a closed union (string, int, uint, bool, UUID) so
// that every value has one canonical text rendering and one JSON shape.
// Iteration is deterministic (sorted by field name), which makes rendered
// output byte-stable regardless of insertion order.
package metadata
