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

package code

// Canonical codes, one per semantic kind.
//
// These are the defaults a constructor assigns when the caller names a kind
// but no explicit code. They are stable wire values: renaming one is a
// breaking change for every consumer correlating on it.
const (
	// Internal is the fallback classification for unexpected server-side
	// failures. The root cause travels as the record's cause, never in the
	// public message.
	Internal Code = "internal"

	// Validation marks input that violates a structural or semantic
	// invariant: format, range, charset, or cross-field consistency.
	Validation Code = "validation"

	// NotFound marks lookups whose target does not exist in the current
	// scope, whether by id, name, or key.
	NotFound Code = "not_found"

	// Conflict marks domain-state clashes: concurrent updates, version
	// mismatches, uniqueness violations.
	Conflict Code = "conflict"

	// Unauthorized marks requests with no verifiable caller identity.
	// Records carrying it usually also carry a WWW-Authenticate challenge.
	Unauthorized Code = "unauthorized"

	// Forbidden marks authenticated callers lacking the privilege for the
	// target operation.
	Forbidden Code = "forbidden"

	// Database marks failures originating in a storage engine: connection
	// loss, constraint errors surfaced as infrastructure faults, corrupt
	// rows.
	Database Code = "database"

	// Timeout marks operations that exceeded their time budget. The cause
	// is often context.DeadlineExceeded.
	Timeout Code = "timeout"

	// Network marks transport-level reachability failures: DNS, dial,
	// resets, partitions.
	Network Code = "network"

	// RateLimited marks callers pushed back by a rate or quota policy.
	// Records carrying it usually also carry retry advice.
	RateLimited Code = "rate_limited"

	// ExternalAPI marks application-level failures returned by a third-party
	// service that was reachable but refused or botched the request.
	ExternalAPI Code = "external_api"

	// Serialization marks failures encoding a value for the wire or storage.
	Serialization Code = "serialization"

	// Deserialization marks failures decoding a wire or storage payload.
	Deserialization Code = "deserialization"

	// Queue marks failures interacting with a message broker or job queue:
	// publish rejections, full queues, consumer-group faults.
	Queue Code = "queue"

	// Cache marks failures interacting with a cache tier, as opposed to the
	// authoritative store.
	Cache Code = "cache"
)

// Refinement codes.
//
// These share a kind with one of the canonical codes above but carry a more
// specific machine meaning, and may map to a different transport status.
const (
	// AlreadyExists refines Conflict: creation clashed with an existing
	// identity. Distinct so clients can offer "use the existing one".
	AlreadyExists Code = "already_exists"

	// MissingField refines Validation: a required field was absent rather
	// than malformed.
	MissingField Code = "missing_field"

	// TokenExpired refines Unauthorized: credentials were presented and
	// understood but are past their lifetime; the client should re-auth,
	// not re-send.
	TokenExpired Code = "token_expired"

	// QuotaExceeded refines RateLimited: a standing allocation is exhausted
	// rather than a per-window rate being exceeded.
	QuotaExceeded Code = "quota_exceeded"

	// UpstreamUnavailable refines Network: the failing hop is a named
	// upstream dependency rather than the local segment.
	UpstreamUnavailable Code = "upstream_unavailable"

	// Deadlock refines Database: the engine chose this transaction as a
	// deadlock victim; the operation is usually safe to retry.
	Deadlock Code = "deadlock"
)

// Builtin returns the full catalog of codes this package declares, canonical
// and refinement alike. The protocol registry's exhaustiveness test iterates
// this slice; adding a code here without a registry entry fails that test.
func Builtin() []Code {
	return []Code{
		Internal,
		Validation,
		NotFound,
		Conflict,
		Unauthorized,
		Forbidden,
		Database,
		Timeout,
		Network,
		RateLimited,
		ExternalAPI,
		Serialization,
		Deserialization,
		Queue,
		Cache,
		AlreadyExists,
		MissingField,
		TokenExpired,
		QuotaExceeded,
		UpstreamUnavailable,
		Deadlock,
	}
}
