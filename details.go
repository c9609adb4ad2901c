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
	"encoding/json"
)

// Details is the optional structured payload of a record: either an
// arbitrary JSON-marshalable value or plain text. Details are advisory;
// a payload that cannot serialize is dropped at render time rather than
// failing the render.
type Details struct {
	text   string
	value  any
	isText bool
}

// JSONDetails wraps an arbitrary value to be serialized as JSON.
func JSONDetails(v any) *Details {
	return &Details{value: v}
}

// TextDetails wraps a plain-text payload.
func TextDetails(s string) *Details {
	return &Details{text: s, isText: true}
}

// Payload returns the JSON-safe form of the details: the text itself, or
// the value round-tripped through encoding/json. The second return is false
// when the value fails to serialize; callers must then omit the details.
func (d *Details) Payload() (any, bool) {
	if d == nil {
		return nil, false
	}
	if d.isText {
		return d.text, true
	}
	raw, err := json.Marshal(d.value)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// Text returns the plain-text payload and whether this is a text detail.
func (d *Details) Text() (string, bool) {
	if d == nil || !d.isText {
		return "", false
	}
	return d.text, true
}
