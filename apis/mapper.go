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

package apis

import (
	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the protocol mapping
// registry. It resolves a (code, kind) pair into transport statuses and a
// problem-type URI.
//
// Every code in the built-in catalog resolves; an unmapped code is a
// programming error surfaced by the registry's exhaustiveness test, not a
// runtime condition, so none of these methods return an error.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the pair. Falls back to the
	// kind-level default when no per-code entry exists.
	HTTPStatus(c code.Code, k kind.Kind) int

	// GRPCStatus returns the gRPC status for the pair, with the same
	// fallback behavior.
	GRPCStatus(c code.Code, k kind.Kind) codes.Code

	// ProblemType returns the RFC 9457 problem-type URI for the pair.
	ProblemType(c code.Code, k kind.Kind) string

	// Status resolves all three in one call with consistent matching.
	Status(c code.Code, k kind.Kind) Status

	// Explain returns a human-readable trace of which rule matched.
	Explain(c code.Code, k kind.Kind) string
}

// Status is the resolved transport projection of one logical error.
type Status struct {
	HTTP        int        // net/http compatible status code
	GRPC        codes.Code // canonical gRPC status code
	ProblemType string     // RFC 9457 problem-type URI
}
