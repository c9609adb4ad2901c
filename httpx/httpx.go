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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"errwire.dev/errwire"
	"errwire.dev/errwire/apis"
	"errwire.dev/errwire/diag"
	"errwire.dev/errwire/mode"
	"errwire.dev/errwire/render"
)

// Problem is the RFC 9457 problem-details shape this boundary writes,
// extended with the errwire identity pair and mode-filtered context.
// See https://www.rfc-editor.org/rfc/rfc9457.html.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`

	// Extension members.
	Code        string         `json:"code"`
	Kind        string         `json:"kind"`
	RetryAfter  *uint64        `json:"retry_after,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	SourceChain []string       `json:"source_chain,omitempty"`
	Docs        string         `json:"docs,omitempty"`
}

// Writer turns error records into problem-details responses using the
// provided protocol mapping registry.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes e as application/problem+json under the process display
// mode.
func (w Writer) Write(rw http.ResponseWriter, e *errwire.Error) {
	w.WriteMode(rw, e, mode.Active())
}

// WriteMode is Write with an explicit display mode; the HTTP status comes
// from the registry, the body fields from the mode's disclosure rules.
// Nothing is written for a nil record.
func (w Writer) WriteMode(rw http.ResponseWriter, e *errwire.Error, m mode.Mode) {
	if e == nil {
		return
	}

	st := w.Mapper.Status(e.Code, e.Kind)
	p := w.problem(e, m, st)

	rw.Header().Set("Content-Type", "application/problem+json")
	if e.Retry != nil {
		rw.Header().Set("Retry-After", strconv.FormatUint(e.Retry.AfterSeconds, 10))
	}
	if e.WWWAuthenticate != "" {
		rw.Header().Set("WWW-Authenticate", e.WWWAuthenticate)
	}
	rw.WriteHeader(st.HTTP)

	b, err := json.Marshal(p)
	if err != nil {
		// The problem shape is JSON-safe by construction; keep the identity
		// pair even if an extension value misbehaves.
		b, _ = json.Marshal(Problem{
			Type: st.ProblemType, Title: e.Kind.Label(), Status: st.HTTP,
			Code: string(e.Code), Kind: e.Kind.String(),
		})
	}
	_, _ = rw.Write(b)
}

// problem assembles the body. Disclosure follows the render package's mode
// rules exactly: what a renderer would not emit, the HTTP boundary does not
// emit either.
func (w Writer) problem(e *errwire.Error, m mode.Mode, st apis.Status) Problem {
	p := Problem{
		Type:   st.ProblemType,
		Title:  e.Kind.Label(),
		Status: st.HTTP,
		Code:   string(e.Code),
		Kind:   e.Kind.String(),
	}
	if e.Policy != errwire.Redact && e.Message != "" {
		p.Detail = e.Message
	}
	if e.Retry != nil {
		after := e.Retry.AfterSeconds
		p.RetryAfter = &after
	}
	if md := render.Fields(e, m); len(md) > 0 {
		p.Metadata = md
	}
	if m == mode.Staging || m == mode.Local {
		p.SourceChain = render.SourceChain(e, render.DefaultSourceChainDepth)
	}
	if doc, ok := e.Diagnostics().VisibleDoc(diag.Visibility(m.MinVisibility())); ok {
		p.Docs = doc.URL
	}
	return p
}
