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

package diag

import (
	"iter"
	"slices"
)

// Hint is a short remedial note for a human reading the error.
type Hint struct {
	Message    string
	Visibility Visibility
}

// Suggestion is a concrete next step, optionally with a runnable command.
type Suggestion struct {
	Message    string
	Command    string // optional shell command; empty when not applicable
	Visibility Visibility
}

// DocLink points at reference documentation for the error.
type DocLink struct {
	URL        string
	Title      string // optional
	Visibility Visibility
}

// Diagnostics bundles the advisory content of an error record: hints,
// suggestions, a documentation link, and related codes. Error records hold
// it behind a pointer so records without diagnostics pay nothing.
//
// The zero value is an empty bundle, ready to use.
type Diagnostics struct {
	Hints        []Hint
	Suggestions  []Suggestion
	Doc          *DocLink
	RelatedCodes []string
}

// AddHint appends a hint at the default DevOnly tier.
func (d *Diagnostics) AddHint(msg string) {
	d.AddHintWith(msg, DevOnly)
}

// AddHintWith appends a hint at an explicit tier.
func (d *Diagnostics) AddHintWith(msg string, v Visibility) {
	d.Hints = append(d.Hints, Hint{Message: msg, Visibility: v})
}

// AddSuggestion appends a suggestion at the default DevOnly tier.
func (d *Diagnostics) AddSuggestion(msg, command string) {
	d.AddSuggestionWith(msg, command, DevOnly)
}

// AddSuggestionWith appends a suggestion at an explicit tier.
func (d *Diagnostics) AddSuggestionWith(msg, command string, v Visibility) {
	d.Suggestions = append(d.Suggestions, Suggestion{Message: msg, Command: command, Visibility: v})
}

// SetDoc sets or replaces the documentation link.
func (d *Diagnostics) SetDoc(url, title string, v Visibility) {
	d.Doc = &DocLink{URL: url, Title: title, Visibility: v}
}

// AddRelatedCode records a code that commonly co-occurs with this error.
func (d *Diagnostics) AddRelatedCode(code string) {
	d.RelatedCodes = append(d.RelatedCodes, code)
}

// IsEmpty reports whether the bundle carries nothing at all.
func (d *Diagnostics) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Hints) == 0 && len(d.Suggestions) == 0 && d.Doc == nil && len(d.RelatedCodes) == 0
}

// HasVisibleContent reports whether anything in the bundle clears the given
// minimum tier. Related codes are not tier-tagged and count as always
// visible wherever diagnostics render at all.
func (d *Diagnostics) HasVisibleContent(min Visibility) bool {
	if d == nil {
		return false
	}
	for _, h := range d.Hints {
		if h.Visibility >= min {
			return true
		}
	}
	for _, s := range d.Suggestions {
		if s.Visibility >= min {
			return true
		}
	}
	if d.Doc != nil && d.Doc.Visibility >= min {
		return true
	}
	return len(d.RelatedCodes) > 0
}

// VisibleHints yields hints at or above the minimum tier, lazily and in
// push order. Nothing is copied unless the caller collects.
func (d *Diagnostics) VisibleHints(min Visibility) iter.Seq[Hint] {
	return func(yield func(Hint) bool) {
		if d == nil {
			return
		}
		for _, h := range d.Hints {
			if h.Visibility >= min && !yield(h) {
				return
			}
		}
	}
}

// VisibleSuggestions yields suggestions at or above the minimum tier,
// lazily and in push order.
func (d *Diagnostics) VisibleSuggestions(min Visibility) iter.Seq[Suggestion] {
	return func(yield func(Suggestion) bool) {
		if d == nil {
			return
		}
		for _, s := range d.Suggestions {
			if s.Visibility >= min && !yield(s) {
				return
			}
		}
	}
}

// VisibleDoc returns the documentation link if it clears the minimum tier.
func (d *Diagnostics) VisibleDoc(min Visibility) (DocLink, bool) {
	if d == nil || d.Doc == nil || d.Doc.Visibility < min {
		return DocLink{}, false
	}
	return *d.Doc, true
}

// Clone returns an independent copy, for the record's copy-on-write builder.
func (d *Diagnostics) Clone() *Diagnostics {
	if d == nil {
		return nil
	}
	cp := &Diagnostics{
		Hints:        slices.Clone(d.Hints),
		Suggestions:  slices.Clone(d.Suggestions),
		RelatedCodes: slices.Clone(d.RelatedCodes),
	}
	if d.Doc != nil {
		doc := *d.Doc
		cp.Doc = &doc
	}
	return cp
}
