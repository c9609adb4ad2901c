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
	"strconv"

	"github.com/google/uuid"
)

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInt
	KindUint
	KindBool
	KindUUID
)

// Value is the typed payload of a metadata field. It is a closed tagged
// union over the types that are safe and useful on an error path: strings,
// signed and unsigned integers, booleans, and UUIDs. A Value is immutable
// once constructed.
//
// Keeping the set closed (rather than holding `any`) means every value has
// a deterministic string rendering and a deterministic JSON shape, which the
// redaction and rendering layers rely on.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	u    uint64
	b    bool
	id   uuid.UUID
}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue wraps a signed integer.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// UintValue wraps an unsigned integer.
func UintValue(u uint64) Value { return Value{kind: KindUint, u: u} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// UUIDValue wraps a UUID.
func UUIDValue(id uuid.UUID) Value { return Value{kind: KindUUID, id: id} }

// Kind returns the variant tag of the value.
func (v Value) Kind() ValueKind { return v.kind }

// String renders the value as text. Every variant has a canonical form, so
// two equal values always render identically.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindUUID:
		return v.id.String()
	}
	return ""
}

// Any returns the value as a plain Go type suitable for JSON encoding.
// UUIDs surface as their canonical string form.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindBool:
		return v.b
	case KindUUID:
		return v.id.String()
	}
	return nil
}

// Equal reports whether two values have the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindUint:
		return v.u == o.u
	case KindBool:
		return v.b == o.b
	case KindUUID:
		return v.id == o.id
	}
	return false
}

// Field is a named, typed metadata entry. Names should be package-level
// constants at call sites: stable identifiers, snake_case or dotted
// (e.g. "caller.file"), never built from user input.
type Field struct {
	Name  string
	Value Value
}

// String builds a string field.
func String(name, val string) Field { return Field{Name: name, Value: StringValue(val)} }

// Int builds a signed integer field.
func Int(name string, val int64) Field { return Field{Name: name, Value: IntValue(val)} }

// Uint builds an unsigned integer field.
func Uint(name string, val uint64) Field { return Field{Name: name, Value: UintValue(val)} }

// Bool builds a boolean field.
func Bool(name string, val bool) Field { return Field{Name: name, Value: BoolValue(val)} }

// UUID builds a UUID field.
func UUID(name string, val uuid.UUID) Field { return Field{Name: name, Value: UUIDValue(val)} }
