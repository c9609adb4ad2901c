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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the stable, machine-readable identifier carried by every error
// record. It is distinct from the human message and is what protocol
// registries, counters and cross-service correlation key on.
//
// Code is a dedicated type (not a bare string) so that packages can state
// explicitly which values they accept, and so raw user input is never mixed
// with normalized values by accident.
//
// The empty code ("") is not a valid code. Every error record carries a
// non-empty code; constructors default it from the record's kind.
type Code string

// Length bounds for a canonical code. Exposed as named constants so tests
// and mirror validations elsewhere stay in sync with the regexp below.
const (
	// MinLength rejects ultra-short identifiers like "a" or "x1" that carry
	// no information across service boundaries.
	MinLength = 3

	// MaxLength caps codes at 64 characters, enough for descriptive values
	// such as "upstream_unavailable" while preventing accidental blobs.
	MaxLength = 64
)

// codeFmt is the canonical pattern for a code:
//
//	^                start
//	[a-z]            first character is a lowercase ASCII letter
//	[a-z0-9_]{2,63}  rest is lowercase letters, digits or underscore; the
//	                 quantifier ties total length to MinLength..MaxLength
//	$                end
//
// The {2,63} range is derived from MinLength/MaxLength above; change them
// together.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

// codeRe is precompiled because validation sits on error construction paths
// and registry builds, which may run it repeatedly.
var codeRe = regexp.MustCompile(codeFmt)

// ErrInvalid is returned when a value cannot be parsed or validated as a
// code. A dedicated sentinel lets callers distinguish "bad code format"
// from other failures with errors.Is.
var ErrInvalid = errors.New("errwire: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It means "not provided" and never passes
// Validate; constructors replace it with the kind's canonical default.
var Empty Code = ""

// Parse normalizes and validates s, returning a canonical Code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// constant declarations.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to canonical form using only
// obvious, non-lossy transformations: trim surrounding space, lowercase,
// and replace '-' with '_'. The result is not guaranteed valid; callers
// still go through Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c is a canonical code. The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Invalid codes refuse to
// marshal rather than leak a malformed identifier onto the wire.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is normalized
// and validated before assignment.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalid
	}
	return nil
}
