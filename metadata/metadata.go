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
	"iter"
	"slices"
	"strings"
)

// Metadata is a deterministic, ordered collection of Fields keyed by name.
//
// Iteration order is always the name's sort order, not insertion order:
// two stores built from the same fields in any order serialize identically.
// Duplicate insertion replaces the existing field and hands back the
// previous value.
//
// Alongside the fields, Metadata tracks an independent per-name Redaction
// policy. A policy can exist with no matching field (it then applies to a
// field inserted later) and survives field replacement.
//
// The zero value is an empty store, ready to use.
type Metadata struct {
	// fields stays sorted by Field.Name; all mutation goes through Insert
	// so unrelated fields are never reordered.
	fields     []Field
	redactions map[string]Redaction
}

// Entry is one (name, value, policy) triple yielded by AllWithRedaction.
type Entry struct {
	Name      string
	Value     Value
	Redaction Redaction
}

// FromFields builds a store from the given fields. Later duplicates of the
// same name win, mirroring Insert semantics.
func FromFields(fields ...Field) Metadata {
	var m Metadata
	m.Extend(fields...)
	return m
}

// Insert adds f, replacing any existing field of the same name. It returns
// the previous value and whether one existed.
func (m *Metadata) Insert(f Field) (Value, bool) {
	idx, found := slices.BinarySearchFunc(m.fields, f, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})
	if found {
		prev := m.fields[idx].Value
		m.fields[idx] = f
		return prev, true
	}
	m.fields = slices.Insert(m.fields, idx, f)
	return Value{}, false
}

// Extend inserts every field in order, with the same replace-on-duplicate
// semantics as Insert.
func (m *Metadata) Extend(fields ...Field) {
	for _, f := range fields {
		m.Insert(f)
	}
}

// Get returns the value stored under name.
func (m *Metadata) Get(name string) (Value, bool) {
	idx, found := m.search(name)
	if !found {
		return Value{}, false
	}
	return m.fields[idx].Value, true
}

// Redaction returns the policy registered for name, if any. A policy may be
// present without a matching field.
func (m *Metadata) Redaction(name string) (Redaction, bool) {
	r, ok := m.redactions[name]
	return r, ok
}

// SetRedaction registers the disclosure policy for name. It applies
// retroactively to an already-present field and prospectively to any field
// inserted under that name later. Registering a policy for a name that
// never receives a field is a harmless no-op at render time.
func (m *Metadata) SetRedaction(name string, r Redaction) {
	if m.redactions == nil {
		m.redactions = make(map[string]Redaction, 4)
	}
	m.redactions[name] = r
}

// All yields (name, value) pairs in name order.
func (m *Metadata) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, f := range m.fields {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	}
}

// AllWithRedaction yields entries in name order, each carrying its
// effective policy (None when no policy was registered).
func (m *Metadata) AllWithRedaction() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, f := range m.fields {
			e := Entry{Name: f.Name, Value: f.Value, Redaction: m.redactions[f.Name]}
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of stored fields. Registered policies without a
// field do not count.
func (m *Metadata) Len() int { return len(m.fields) }

// IsEmpty reports whether the store holds no fields.
func (m *Metadata) IsEmpty() bool { return len(m.fields) == 0 }

// Clone returns an independent copy. The error record's copy-on-write
// builder methods rely on this to keep earlier record values untouched.
func (m *Metadata) Clone() Metadata {
	cp := Metadata{}
	if len(m.fields) > 0 {
		cp.fields = slices.Clone(m.fields)
	}
	if len(m.redactions) > 0 {
		cp.redactions = make(map[string]Redaction, len(m.redactions))
		for k, v := range m.redactions {
			cp.redactions[k] = v
		}
	}
	return cp
}

func (m *Metadata) search(name string) (int, bool) {
	return slices.BinarySearchFunc(m.fields, Field{Name: name}, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})
}
