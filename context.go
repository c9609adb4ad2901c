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
	"runtime"

	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
	"errwire.dev/errwire/metadata"
)

// Metadata field names produced by caller-location tracking.
//
// Go's runtime exposes file and line but no column; caller.column is
// recorded as 0 so the three-field wire shape stays stable across
// implementations that do have columns.
const (
	CallerFileField   = "caller.file"
	CallerLineField   = "caller.line"
	CallerColumnField = "caller.column"
)

// Ctx accumulates context for promoting a foreign error into an Error
// record: a kind (with its canonical code defaulted), extra fields,
// redaction overrides, and optionally the caller's location.
//
// A Ctx is reusable: IntoError materializes a fresh record each call, so a
// builder prepared once can convert every error of a loop.
//
// Usage:
//
//	c := errwire.In(kind.Database).
//	    Field(metadata.String("table", "users")).
//	    Redact("token", metadata.Hash).
//	    TrackCaller()
//	if err != nil {
//	    return c.IntoError(err)
//	}
type Ctx struct {
	kind          kind.Kind
	code          code.Code
	message       string
	fields        []metadata.Field
	redactions    map[string]metadata.Redaction
	redactMessage bool
	caller        *callerLoc
}

type callerLoc struct {
	file string
	line int
}

// In starts a context builder for the given kind. The record's code
// defaults to the kind's canonical mapping unless Code overrides it.
func In(k kind.Kind) *Ctx {
	return &Ctx{kind: k, code: k.DefaultCode()}
}

// Code overrides the machine code for records this builder produces.
func (c *Ctx) Code(cd code.Code) *Ctx {
	c.code = cd
	return c
}

// Message sets the human message for records this builder produces.
func (c *Ctx) Message(msg string) *Ctx {
	c.message = msg
	return c
}

// Field accumulates one metadata field.
func (c *Ctx) Field(f metadata.Field) *Ctx {
	c.fields = append(c.fields, f)
	return c
}

// Fields accumulates several metadata fields.
func (c *Ctx) Fields(fields ...metadata.Field) *Ctx {
	c.fields = append(c.fields, fields...)
	return c
}

// Redact registers a per-field disclosure policy. The policy applies to
// fields already accumulated under that name and to fields added later.
func (c *Ctx) Redact(name string, r metadata.Redaction) *Ctx {
	if c.redactions == nil {
		c.redactions = make(map[string]metadata.Redaction, 4)
	}
	c.redactions[name] = r
	return c
}

// RedactMessage marks the message of produced records as non-disclosable
// outside Local rendering.
func (c *Ctx) RedactMessage() *Ctx {
	c.redactMessage = true
	return c
}

// TrackCaller records the location of this call as three metadata fields
// (caller.file, caller.line, caller.column) on every record produced.
func (c *Ctx) TrackCaller() *Ctx {
	if _, file, line, ok := runtime.Caller(1); ok {
		c.caller = &callerLoc{file: file, line: line}
	}
	return c
}

// IntoError materializes a record: caller-location fields first, then the
// accumulated fields, then the redaction policies re-applied on top, the
// causal error attached, and telemetry dispatched exactly once at the end.
//
// Each call produces an independent record, so calling IntoError in a loop
// never duplicates fields across iterations.
func (c *Ctx) IntoError(cause error) *Error {
	e := &Error{
		Code:    c.code,
		Kind:    c.kind,
		Message: c.message,
		state:   newState(),
	}
	if c.caller != nil {
		e.Meta.Extend(
			metadata.String(CallerFileField, c.caller.file),
			metadata.Int(CallerLineField, int64(c.caller.line)),
			metadata.Int(CallerColumnField, 0),
		)
	}
	e.Meta.Extend(c.fields...)
	for name, r := range c.redactions {
		e.Meta.SetRedaction(name, r)
	}
	if c.redactMessage {
		e.Policy = Redact
	}
	e.cause = cause
	e.Dispatch()
	return e
}
