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

package registry

import (
	"net/http"

	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
	"google.golang.org/grpc/codes"
)

// DefaultProblemBase prefixes generated problem-type URIs for codes without
// an explicit per-code URI.
const DefaultProblemBase = "https://errwire.dev/problems"

// defaultHTTP is the built-in HTTP projection of every catalog code. The
// exhaustiveness test asserts this table covers code.Builtin() completely;
// extending the catalog without extending this table fails the build's
// tests, which is where an unmapped code is supposed to be caught.
var defaultHTTP = map[code.Code]int{
	// 5xx — server-side and dependency failures.
	code.Internal:            http.StatusInternalServerError,
	code.Database:            http.StatusInternalServerError,
	code.Serialization:       http.StatusInternalServerError,
	code.Deadlock:            http.StatusConflict, // retryable victim; clients should re-submit
	code.Timeout:             http.StatusGatewayTimeout,
	code.Network:             http.StatusBadGateway,
	code.ExternalAPI:         http.StatusBadGateway,
	code.Queue:               http.StatusServiceUnavailable,
	code.Cache:               http.StatusServiceUnavailable,
	code.UpstreamUnavailable: http.StatusServiceUnavailable,

	// 4xx — client, input, and resource issues.
	code.Validation:      http.StatusBadRequest,
	code.MissingField:    http.StatusBadRequest,
	code.Deserialization: http.StatusBadRequest,
	code.NotFound:        http.StatusNotFound,
	code.Conflict:        http.StatusConflict,
	code.AlreadyExists:   http.StatusConflict,

	// AuthN / AuthZ.
	code.Unauthorized: http.StatusUnauthorized,
	code.TokenExpired: http.StatusUnauthorized,
	code.Forbidden:    http.StatusForbidden,

	// Rate and quota.
	code.RateLimited:   http.StatusTooManyRequests,
	code.QuotaExceeded: http.StatusTooManyRequests,
}

// defaultGRPC is the built-in gRPC projection of every catalog code, chosen
// to track the canonical status semantics.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:            codes.Internal,
	code.Database:            codes.Internal,
	code.Serialization:       codes.Internal,
	code.Deadlock:            codes.Aborted,
	code.Timeout:             codes.DeadlineExceeded,
	code.Network:             codes.Unavailable,
	code.ExternalAPI:         codes.Unavailable,
	code.Queue:               codes.Unavailable,
	code.Cache:               codes.Unavailable,
	code.UpstreamUnavailable: codes.Unavailable,

	code.Validation:      codes.InvalidArgument,
	code.MissingField:    codes.InvalidArgument,
	code.Deserialization: codes.InvalidArgument,
	code.NotFound:        codes.NotFound,
	code.Conflict:        codes.Aborted,
	code.AlreadyExists:   codes.AlreadyExists,

	code.Unauthorized: codes.Unauthenticated,
	code.TokenExpired: codes.Unauthenticated,
	code.Forbidden:    codes.PermissionDenied,

	code.RateLimited:   codes.ResourceExhausted,
	code.QuotaExceeded: codes.ResourceExhausted,
}

// kindHTTP and kindGRPC are the category-level fallbacks used when a record
// carries a custom code the registry has never seen. They mirror the
// canonical code of each kind, so a custom code degrades to its category's
// behavior instead of a blanket 500.
var kindHTTP = map[kind.Kind]int{
	kind.Internal:        http.StatusInternalServerError,
	kind.NotFound:        http.StatusNotFound,
	kind.Validation:      http.StatusBadRequest,
	kind.Conflict:        http.StatusConflict,
	kind.Unauthorized:    http.StatusUnauthorized,
	kind.Forbidden:       http.StatusForbidden,
	kind.Database:        http.StatusInternalServerError,
	kind.Timeout:         http.StatusGatewayTimeout,
	kind.Network:         http.StatusBadGateway,
	kind.RateLimited:     http.StatusTooManyRequests,
	kind.ExternalAPI:     http.StatusBadGateway,
	kind.Serialization:   http.StatusInternalServerError,
	kind.Deserialization: http.StatusBadRequest,
	kind.Queue:           http.StatusServiceUnavailable,
	kind.Cache:           http.StatusServiceUnavailable,
}

var kindGRPC = map[kind.Kind]codes.Code{
	kind.Internal:        codes.Internal,
	kind.NotFound:        codes.NotFound,
	kind.Validation:      codes.InvalidArgument,
	kind.Conflict:        codes.Aborted,
	kind.Unauthorized:    codes.Unauthenticated,
	kind.Forbidden:       codes.PermissionDenied,
	kind.Database:        codes.Internal,
	kind.Timeout:         codes.DeadlineExceeded,
	kind.Network:         codes.Unavailable,
	kind.RateLimited:     codes.ResourceExhausted,
	kind.ExternalAPI:     codes.Unavailable,
	kind.Serialization:   codes.Internal,
	kind.Deserialization: codes.InvalidArgument,
	kind.Queue:           codes.Unavailable,
	kind.Cache:           codes.Unavailable,
}
