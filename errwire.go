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

package errwire

import (
	"fmt"

	"errwire.dev/errwire/code"
	"errwire.dev/errwire/diag"
	"errwire.dev/errwire/kind"
	"errwire.dev/errwire/metadata"
)

// EditPolicy governs disclosure of the top-level message. It is orthogonal
// to per-field redaction in the metadata store.
type EditPolicy uint8

const (
	// Preserve lets renderers show the message wherever messages render.
	Preserve EditPolicy = iota

	// Redact hides the message outside Local rendering; textual renderers
	// substitute the kind's label, never an empty string.
	Redact
)

// RetryInfo is the client-facing retry advice carried by throttling and
// availability errors.
type RetryInfo struct {
	AfterSeconds uint64
}

// Error is the canonical rich error record.
//
// It carries:
//   - Code: stable machine-readable identifier (required, defaulted from Kind);
//   - Kind: semantic category (closed enumeration);
//   - Message: optional human-oriented description;
//   - Meta: typed, ordered metadata with per-field redaction;
//   - Policy: whole-message redaction policy;
//   - Retry / WWWAuthenticate / Details: optional transport hints;
//   - a causal error, advisory diagnostics, and a lazily captured backtrace.
//
// All mutation helpers (WithX) return a shallow copy, so records can be
// threaded through a fluent builder chain while earlier values stay intact.
// The copies share one dispatch state: the chain is a single logical record,
// and telemetry for it fires exactly once, reflecting the final state.
type Error struct {
	// Code is the primary machine identity, e.g. "not_found" or
	// "token_expired". Always a normalized value from errwire/code.
	Code code.Code

	// Kind is the semantic category. Constructors set Code and Kind
	// together via kind.DefaultCode; either can be overridden afterward.
	Kind kind.Kind

	// Message is the human-readable explanation. Empty means "not
	// provided"; renderers fall back to Kind.Label() where text is needed.
	Message string

	// Meta holds typed context fields with per-name redaction policies.
	Meta metadata.Metadata

	// Policy controls whether Message may leave trusted surfaces.
	Policy EditPolicy

	// Retry, when present, advises clients how long to back off.
	Retry *RetryInfo

	// WWWAuthenticate, when non-empty, is the challenge an HTTP boundary
	// should place in the WWW-Authenticate header.
	WWWAuthenticate string

	// Details is an optional structured payload. Advisory: renderers omit
	// it when it fails to serialize rather than failing the render.
	Details *Details

	// cause is the wrapped underlying error, exposed through Unwrap for
	// errors.Is / errors.As traversal. Go error interface values are
	// reference-like, so a cause attached to several records is shared
	// without copying.
	cause error

	// diags is nil for the common record with no diagnostics.
	diags *diag.Diagnostics

	// state holds the dirty flags and backtrace cell shared across the
	// builder chain.
	state *state
}

// E constructs an error record of the given kind, with the kind's canonical
// code, applies the options in order, and dispatches telemetry once.
//
// Usage:
//
//	return errwire.E(kind.Database, "replica is down",
//	    errwire.WithFieldOption(metadata.String("node", "pg-2")),
//	    errwire.WithCauseOption(err),
//	)
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{
		Code:    k.DefaultCode(),
		Kind:    k,
		Message: msg,
		state:   newState(),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	e.Dispatch()
	return e
}

// Wrap is shorthand for E with a cause attached.
func Wrap(k kind.Kind, msg string, cause error) *Error {
	return E(k, msg, WithCauseOption(cause))
}

// Error implements the built-in error interface, formatted as
//
//	<code>: <message>
//
// with the kind label standing in for an absent message. The full rendering
// surface lives in errwire/render; this string is for logs and wrapping.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Label()
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying cause without stdlib traversal.
func (e *Error) Cause() error { return e.cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return e.Kind.String() }

// Diagnostics returns the advisory bundle, which may be nil. Callers must
// treat it as read-only; mutation goes through the WithHint family.
func (e *Error) Diagnostics() *diag.Diagnostics { return e.diags }

// Backtrace returns the snapshot attached to or captured for this record,
// or nil when capture is disabled and nothing was attached.
func (e *Error) Backtrace() Stack {
	if e == nil || e.state == nil {
		return nil
	}
	return e.state.backtrace()
}

// clone is the copy-on-write step behind every WithX method. The metadata
// store and diagnostics are deep-copied so the original record is
// untouched; the dispatch state is shared on purpose.
func (e *Error) clone() *Error {
	cp := *e
	cp.Meta = e.Meta.Clone()
	cp.diags = e.diags.Clone()
	if e.Retry != nil {
		r := *e.Retry
		cp.Retry = &r
	}
	if e.state == nil {
		cp.state = newState()
	}
	return &cp
}
