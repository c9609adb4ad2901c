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

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"errwire.dev/errwire"
	"errwire.dev/errwire/diag"
	"errwire.dev/errwire/metadata"
)

// Styling for the Local text block. Color is pure decoration: ANSI
// sequences wrap the text and never alter it, so substring assertions in
// tests hold with or without a TTY. fatih/color disables itself under
// NO_COLOR or when stdout is not a terminal.
var (
	headStyle  = color.New(color.FgRed, color.Bold)
	labelStyle = color.New(color.FgCyan)
	dimStyle   = color.New(color.Faint)
)

// Local produces the developer-terminal rendering: every section of the
// record, unredacted. The terminal is trusted; this output must never be
// sent to a client.
func Local(e *errwire.Error) string {
	var b strings.Builder

	b.WriteString(headStyle.Sprintf("%s [%s]", e.Kind.String(), e.Code))
	b.WriteString("\n")

	msg := e.Message
	if msg == "" {
		msg = e.Kind.Label()
	}
	fmt.Fprintf(&b, "  %s\n", msg)

	if cause := e.Cause(); cause != nil {
		b.WriteString(labelStyle.Sprint("caused by:"))
		b.WriteString("\n")
		for depth := 0; cause != nil; depth++ {
			fmt.Fprintf(&b, "  %s%s\n", strings.Repeat("  ", depth), cause.Error())
			cause = errors.Unwrap(cause)
		}
	}

	if !e.Meta.IsEmpty() {
		b.WriteString(labelStyle.Sprint("metadata:"))
		b.WriteString("\n")
		for entry := range e.Meta.AllWithRedaction() {
			if entry.Redaction != metadata.None {
				fmt.Fprintf(&b, "  %s = %s %s\n",
					entry.Name, entry.Value.String(),
					dimStyle.Sprintf("(%s)", entry.Redaction))
			} else {
				fmt.Fprintf(&b, "  %s = %s\n", entry.Name, entry.Value.String())
			}
		}
	}

	if d := e.Diagnostics(); d.HasVisibleContent(diag.DevOnly) {
		b.WriteString(labelStyle.Sprint("diagnostics:"))
		b.WriteString("\n")
		for h := range d.VisibleHints(diag.DevOnly) {
			fmt.Fprintf(&b, "  hint: %s\n", h.Message)
		}
		for s := range d.VisibleSuggestions(diag.DevOnly) {
			if s.Command != "" {
				fmt.Fprintf(&b, "  try: %s %s\n", s.Message, dimStyle.Sprintf("($ %s)", s.Command))
			} else {
				fmt.Fprintf(&b, "  try: %s\n", s.Message)
			}
		}
		if doc, ok := d.VisibleDoc(diag.DevOnly); ok {
			if doc.Title != "" {
				fmt.Fprintf(&b, "  docs: %s <%s>\n", doc.Title, doc.URL)
			} else {
				fmt.Fprintf(&b, "  docs: %s\n", doc.URL)
			}
		}
		if rel := d.RelatedCodes; len(rel) > 0 {
			fmt.Fprintf(&b, "  related: %s\n", strings.Join(rel, ", "))
		}
	}

	if bt := e.Backtrace(); len(bt) > 0 {
		b.WriteString(labelStyle.Sprint("backtrace:"))
		b.WriteString("\n")
		for _, fr := range bt {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Sprintf("%s (%s:%d)", fr.Function, fr.File, fr.Line))
		}
	}

	if text, ok := e.Details.Text(); ok {
		b.WriteString(labelStyle.Sprint("details:"))
		fmt.Fprintf(&b, "\n  %s\n", text)
	}

	return b.String()
}
