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
	"errwire.dev/errwire/code"
	"errwire.dev/errwire/diag"
	"errwire.dev/errwire/kind"
	"errwire.dev/errwire/metadata"
)

// Every WithX method below follows the same contract: clone the record,
// apply the change, re-arm both dirty flags, dispatch, and return the copy.
// The original record is never modified.

// WithCode overrides the machine code while keeping the kind.
func (e *Error) WithCode(c code.Code) *Error {
	cp := e.clone()
	cp.Code = c
	return cp.mutated()
}

// WithKind overrides the semantic category while keeping the code.
func (e *Error) WithKind(k kind.Kind) *Error {
	cp := e.clone()
	cp.Kind = k
	return cp.mutated()
}

// WithMessage replaces the human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := e.clone()
	cp.Message = msg
	return cp.mutated()
}

// WithField adds or replaces one metadata field.
func (e *Error) WithField(f metadata.Field) *Error {
	cp := e.clone()
	cp.Meta.Insert(f)
	return cp.mutated()
}

// WithFields adds or replaces several metadata fields.
func (e *Error) WithFields(fields ...metadata.Field) *Error {
	if len(fields) == 0 {
		return e
	}
	cp := e.clone()
	cp.Meta.Extend(fields...)
	return cp.mutated()
}

// WithRedaction registers the disclosure policy for a field name. The
// policy applies to a field already present under that name and to any
// inserted later; registering for a name that never gets a field is a
// silent no-op at render time.
func (e *Error) WithRedaction(name string, r metadata.Redaction) *Error {
	cp := e.clone()
	cp.Meta.SetRedaction(name, r)
	return cp.mutated()
}

// Redacted marks the top-level message as non-disclosable outside Local
// rendering.
func (e *Error) Redacted() *Error {
	cp := e.clone()
	cp.Policy = Redact
	return cp.mutated()
}

// WithRetryAfter attaches client backoff advice, in seconds.
func (e *Error) WithRetryAfter(seconds uint64) *Error {
	cp := e.clone()
	cp.Retry = &RetryInfo{AfterSeconds: seconds}
	return cp.mutated()
}

// WithWWWAuthenticate attaches the challenge an HTTP boundary should send.
func (e *Error) WithWWWAuthenticate(challenge string) *Error {
	cp := e.clone()
	cp.WWWAuthenticate = challenge
	return cp.mutated()
}

// WithDetails attaches a structured JSON payload. Advisory: if it fails to
// serialize at render time it is omitted, never an error.
func (e *Error) WithDetails(v any) *Error {
	cp := e.clone()
	cp.Details = JSONDetails(v)
	return cp.mutated()
}

// WithDetailsText attaches a plain-text details payload.
func (e *Error) WithDetailsText(text string) *Error {
	cp := e.clone()
	cp.Details = TextDetails(text)
	return cp.mutated()
}

// WithCause attaches the underlying error. Error interface values are
// reference-like in Go, so the same cause may back any number of records
// without copying. A nil cause returns the record unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := e.clone()
	cp.cause = err
	return cp.mutated()
}

// WithBacktrace attaches an explicit snapshot, which is always preferred
// over lazy capture.
func (e *Error) WithBacktrace(bt Stack) *Error {
	cp := e.clone()
	cp.state.explicit = bt
	return cp.mutated()
}

// WithHint appends a DevOnly hint.
func (e *Error) WithHint(msg string) *Error {
	return e.WithHintAt(msg, diag.DevOnly)
}

// WithHintAt appends a hint at an explicit visibility tier.
func (e *Error) WithHintAt(msg string, v diag.Visibility) *Error {
	cp := e.clone()
	cp.ensureDiags().AddHintWith(msg, v)
	return cp.mutated()
}

// WithSuggestion appends a DevOnly suggestion; command may be empty.
func (e *Error) WithSuggestion(msg, command string) *Error {
	return e.WithSuggestionAt(msg, command, diag.DevOnly)
}

// WithSuggestionAt appends a suggestion at an explicit visibility tier.
func (e *Error) WithSuggestionAt(msg, command string, v diag.Visibility) *Error {
	cp := e.clone()
	cp.ensureDiags().AddSuggestionWith(msg, command, v)
	return cp.mutated()
}

// WithDocLink sets or replaces the documentation link.
func (e *Error) WithDocLink(url, title string, v diag.Visibility) *Error {
	cp := e.clone()
	cp.ensureDiags().SetDoc(url, title, v)
	return cp.mutated()
}

// WithRelatedCode records a code that commonly co-occurs with this error.
func (e *Error) WithRelatedCode(c code.Code) *Error {
	cp := e.clone()
	cp.ensureDiags().AddRelatedCode(string(c))
	return cp.mutated()
}

// mutated re-arms the dirty flags and dispatches; shared tail of every
// builder method.
func (e *Error) mutated() *Error {
	e.state.arm()
	e.Dispatch()
	return e
}

func (e *Error) ensureDiags() *diag.Diagnostics {
	if e.diags == nil {
		e.diags = &diag.Diagnostics{}
	}
	return e.diags
}
