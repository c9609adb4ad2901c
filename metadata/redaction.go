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

package metadata

import (
	"crypto/sha256"
	"encoding/hex"
)

// Redaction is the per-field disclosure policy. It is tracked per field
// name, independently of whether a field with that name currently exists,
// so a policy registered early applies to fields inserted later and a
// policy registered late applies retroactively.
type Redaction uint8

const (
	// None discloses the value as-is. This is the only policy the Prod
	// renderer considers safe.
	None Redaction = iota

	// Redact hides the value entirely, in every environment except Local.
	Redact

	// Hash replaces the value with a truncated SHA-256 digest of its
	// canonical string form. The digest is stable, so operators can
	// correlate occurrences without learning the value.
	Hash

	// Last4 masks all but the last four characters of the canonical string
	// form. Intended for card numbers, tokens and similar identifiers where
	// the tail is conventionally disclosable.
	Last4
)

// String returns the policy name used in diagnostics and Local rendering.
func (r Redaction) String() string {
	switch r {
	case None:
		return "none"
	case Redact:
		return "redact"
	case Hash:
		return "hash"
	case Last4:
		return "last4"
	}
	return "none"
}

// hashPrefixLen is how many hex characters of the SHA-256 digest survive.
// 16 hex chars (64 bits) keeps collisions implausible for correlation use
// while making it obvious the value is a digest, not the original.
const hashPrefixLen = 16

// mask is the fixed prefix Last4 substitutes for the hidden portion.
const mask = "****"

// Apply renders v under the policy. The second return is false when the
// policy forbids disclosure entirely (Redact); callers must then omit the
// field rather than emit a placeholder.
func (r Redaction) Apply(v Value) (string, bool) {
	switch r {
	case None:
		return v.String(), true
	case Redact:
		return "", false
	case Hash:
		sum := sha256.Sum256([]byte(v.String()))
		return "sha256:" + hex.EncodeToString(sum[:])[:hashPrefixLen], true
	case Last4:
		s := v.String()
		if len(s) <= 4 {
			return mask, true
		}
		return mask + s[len(s)-4:], true
	}
	return v.String(), true
}
