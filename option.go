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
	"errwire.dev/errwire/metadata"
)

// Option is a functional option for constructing an Error with E. It takes
// an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithCodeOption overrides the code during construction.
func WithCodeOption(c code.Code) Option {
	return func(e *Error) *Error { return e.WithCode(c) }
}

// WithFieldOption adds a metadata field during construction.
func WithFieldOption(f metadata.Field) Option {
	return func(e *Error) *Error { return e.WithField(f) }
}

// WithFieldsOption adds several metadata fields during construction.
func WithFieldsOption(fields ...metadata.Field) Option {
	return func(e *Error) *Error { return e.WithFields(fields...) }
}

// WithRedactionOption registers a field redaction policy during
// construction.
func WithRedactionOption(name string, r metadata.Redaction) Option {
	return func(e *Error) *Error { return e.WithRedaction(name, r) }
}

// WithCauseOption attaches a cause during construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// WithRetryAfterOption attaches retry advice during construction.
func WithRetryAfterOption(seconds uint64) Option {
	return func(e *Error) *Error { return e.WithRetryAfter(seconds) }
}

// RedactedOption marks the message as non-disclosable during construction.
func RedactedOption() Option {
	return func(e *Error) *Error { return e.Redacted() }
}
