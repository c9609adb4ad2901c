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
	"testing"
)

func TestVisibility_Ordering(t *testing.T) {
	if !(DevOnly < Internal && Internal < Public) {
		t.Fatalf("visibility tiers out of order: %d %d %d", DevOnly, Internal, Public)
	}
}

func TestDiagnostics_DefaultTierIsDevOnly(t *testing.T) {
	var d Diagnostics
	d.AddHint("check the connection string")
	d.AddSuggestion("retry with backoff", "svcctl retry --backoff")

	if d.Hints[0].Visibility != DevOnly {
		t.Fatalf("AddHint tier = %v, want DevOnly", d.Hints[0].Visibility)
	}
	if d.Suggestions[0].Visibility != DevOnly {
		t.Fatalf("AddSuggestion tier = %v, want DevOnly", d.Suggestions[0].Visibility)
	}
}

func TestDiagnostics_VisibilityFiltering(t *testing.T) {
	var d Diagnostics
	d.AddHintWith("dev: inspect pool metrics", DevOnly)
	d.AddHintWith("ops: primary may be failing over", Internal)
	d.AddHintWith("service is degraded", Public)
	d.AddSuggestionWith("restart the pod", "kubectl delete pod db-0", Internal)
	d.SetDoc("https://errwire.dev/problems/database", "Database failures", Public)

	counts := map[Visibility]int{DevOnly: 3, Internal: 2, Public: 1}
	for min, want := range counts {
		got := 0
		for range d.VisibleHints(min) {
			got++
		}
		if got != want {
			t.Fatalf("VisibleHints(%v) yielded %d, want %d", min, got, want)
		}
	}

	if n := count(d.VisibleSuggestions(Public)); n != 0 {
		t.Fatalf("Internal suggestion visible at Public tier (%d)", n)
	}
	if n := count(d.VisibleSuggestions(DevOnly)); n != 1 {
		t.Fatalf("VisibleSuggestions(DevOnly) = %d, want 1", n)
	}

	if _, ok := d.VisibleDoc(Public); !ok {
		t.Fatalf("Public doc link must be visible at Public tier")
	}
	d.SetDoc("https://errwire.dev/problems/internal", "", DevOnly)
	if _, ok := d.VisibleDoc(Internal); ok {
		t.Fatalf("DevOnly doc link leaked at Internal tier")
	}
}

func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func TestDiagnostics_NilReceiverSafe(t *testing.T) {
	var d *Diagnostics
	if !d.IsEmpty() {
		t.Fatalf("nil bundle must report empty")
	}
	if d.HasVisibleContent(DevOnly) {
		t.Fatalf("nil bundle must report no visible content")
	}
	if n := count(d.VisibleHints(DevOnly)); n != 0 {
		t.Fatalf("nil bundle yielded %d hints", n)
	}
	if _, ok := d.VisibleDoc(DevOnly); ok {
		t.Fatalf("nil bundle produced a doc link")
	}
	if d.Clone() != nil {
		t.Fatalf("Clone of nil must be nil")
	}
}

func TestDiagnostics_HasVisibleContent(t *testing.T) {
	var d Diagnostics
	if d.HasVisibleContent(DevOnly) {
		t.Fatalf("empty bundle claims visible content")
	}

	d.AddHintWith("only for developers", DevOnly)
	if d.HasVisibleContent(Public) {
		t.Fatalf("DevOnly hint visible at Public tier")
	}
	if !d.HasVisibleContent(DevOnly) {
		t.Fatalf("DevOnly hint invisible at DevOnly tier")
	}

	// Related codes are untiered and count wherever diagnostics render.
	d.AddRelatedCode("timeout")
	if !d.HasVisibleContent(Public) {
		t.Fatalf("related code must count as visible content")
	}
}

func TestDiagnostics_CloneIsIndependent(t *testing.T) {
	var d Diagnostics
	d.AddHint("original hint")
	d.SetDoc("https://errwire.dev/problems/cache", "Cache failures", Internal)
	d.AddRelatedCode("cache")

	cp := d.Clone()
	cp.AddHint("extra hint")
	cp.Doc.URL = "https://example.test/other"
	cp.AddRelatedCode("timeout")

	if len(d.Hints) != 1 {
		t.Fatalf("clone hint leaked, len=%d", len(d.Hints))
	}
	if d.Doc.URL != "https://errwire.dev/problems/cache" {
		t.Fatalf("clone doc mutation leaked: %q", d.Doc.URL)
	}
	if len(d.RelatedCodes) != 1 {
		t.Fatalf("clone related code leaked, len=%d", len(d.RelatedCodes))
	}
}
