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

package kind

import (
	"errwire.dev/errwire/code"
)

// Kind is the closed semantic category of an error record.
//
// The enumeration only ever grows: variants may be added, never removed or
// renumbered, because the numeric values participate in nothing and the
// string forms are wire-stable.
type Kind uint8

const (
	// Internal is the zero value on purpose: a record whose kind was never
	// set classifies as an unexpected server-side failure, which is the
	// safest thing to tell a client.
	Internal Kind = iota
	NotFound
	Validation
	Conflict
	Unauthorized
	Forbidden
	Database
	Timeout
	Network
	RateLimited
	ExternalAPI
	Serialization
	Deserialization
	Queue
	Cache
)

// kindMeta carries the per-kind constants: the wire name used in rendered
// output, the human label used when a redacted or absent message needs a
// textual fallback, and the canonical default code.
type kindMeta struct {
	name  string
	label string
	code  code.Code
}

var kinds = [...]kindMeta{
	Internal:        {"Internal", "internal error", code.Internal},
	NotFound:        {"NotFound", "resource not found", code.NotFound},
	Validation:      {"Validation", "validation failed", code.Validation},
	Conflict:        {"Conflict", "conflicting state", code.Conflict},
	Unauthorized:    {"Unauthorized", "authentication required", code.Unauthorized},
	Forbidden:       {"Forbidden", "permission denied", code.Forbidden},
	Database:        {"Database", "database failure", code.Database},
	Timeout:         {"Timeout", "operation timed out", code.Timeout},
	Network:         {"Network", "network failure", code.Network},
	RateLimited:     {"RateLimited", "rate limit exceeded", code.RateLimited},
	ExternalAPI:     {"ExternalApi", "external service failure", code.ExternalAPI},
	Serialization:   {"Serialization", "serialization failure", code.Serialization},
	Deserialization: {"Deserialization", "deserialization failure", code.Deserialization},
	Queue:           {"Queue", "queue failure", code.Queue},
	Cache:           {"Cache", "cache failure", code.Cache},
}

// String returns the wire name of the kind, e.g. "NotFound". Unknown values
// (possible only through unchecked conversion) report as Internal.
func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return kinds[Internal].name
	}
	return kinds[k].name
}

// Label returns the human-readable fallback text for the kind. Renderers use
// it in place of a message that is absent or redacted; it is never empty.
func (k Kind) Label() string {
	if int(k) >= len(kinds) {
		return kinds[Internal].label
	}
	return kinds[k].label
}

// DefaultCode returns the canonical code for the kind. Constructors assign
// it whenever the caller names a kind without an explicit code, keeping
// (code, kind) mutually consistent by default.
func (k Kind) DefaultCode() code.Code {
	if int(k) >= len(kinds) {
		return kinds[Internal].code
	}
	return kinds[k].code
}

// All returns every declared kind in declaration order. Registry and
// renderer tests iterate it to prove exhaustive coverage.
func All() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}
