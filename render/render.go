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
	"encoding/json"
	"errors"

	"errwire.dev/errwire"
	"errwire.dev/errwire/metadata"
	"errwire.dev/errwire/mode"
)

// DefaultSourceChainDepth bounds the cause chain a Staging rendering walks.
// Five levels is a policy constant, not a law of nature; callers with
// different payload budgets use StagingDepth.
const DefaultSourceChainDepth = 5

// Wire keys shared by the Prod and Staging JSON shapes. These names are a
// stability contract with every consumer parsing rendered errors.
const (
	keyKind        = "kind"
	keyCode        = "code"
	keyMessage     = "message"
	keyDetails     = "details"
	keySourceChain = "source_chain"
	keyMetadata    = "metadata"
)

// Render produces the wire form of e for the given mode: JSON bytes for
// Prod and Staging, the Local text block otherwise.
func Render(e *errwire.Error, m mode.Mode) []byte {
	switch m {
	case mode.Local:
		return []byte(Local(e))
	case mode.Staging:
		return Staging(e)
	default:
		return Prod(e)
	}
}

// Active renders e under the process display mode.
func Active(e *errwire.Error) []byte {
	return Render(e, mode.Active())
}

// Prod produces the minimum-disclosure JSON shape:
//
//	{"kind":"<Kind>","code":"<code>","message":"<optional>", <flat fields>}
//
// The message appears only when the record's edit policy preserves it.
// Metadata appears flattened at the top level and only for fields whose
// redaction policy is None; everything else, including the cause chain,
// backtrace and diagnostics, never leaves a Prod boundary.
func Prod(e *errwire.Error) []byte {
	out := map[string]any{
		keyKind: e.Kind.String(),
		keyCode: string(e.Code),
	}
	if e.Policy != errwire.Redact && e.Message != "" {
		out[keyMessage] = e.Message
	}
	for entry := range e.Meta.AllWithRedaction() {
		if entry.Redaction != metadata.None {
			continue
		}
		if reservedKey(entry.Name) {
			// The identity keys win over a colliding field name.
			continue
		}
		out[entry.Name] = entry.Value.Any()
	}
	if payload, ok := e.Details.Payload(); ok {
		out[keyDetails] = payload
	}
	return marshal(out, e)
}

// Staging produces the semi-trusted JSON shape: the Prod identity plus a
// bounded source chain and a metadata object that excludes only
// Redact-flagged fields (Hash and Last4 values appear transformed —
// staging is deliberately looser than Prod's None-only allow-list).
func Staging(e *errwire.Error) []byte {
	return StagingDepth(e, DefaultSourceChainDepth)
}

// StagingDepth is Staging with an explicit cause-chain ceiling.
func StagingDepth(e *errwire.Error, depth int) []byte {
	out := map[string]any{
		keyKind: e.Kind.String(),
		keyCode: string(e.Code),
	}
	if e.Policy != errwire.Redact && e.Message != "" {
		out[keyMessage] = e.Message
	}
	if chain := sourceChain(e.Cause(), depth); len(chain) > 0 {
		out[keySourceChain] = chain
	}
	md := Fields(e, mode.Staging)
	if len(md) > 0 {
		out[keyMetadata] = md
	}
	if payload, ok := e.Details.Payload(); ok {
		out[keyDetails] = payload
	}
	return marshal(out, e)
}

// Fields returns the mode-filtered metadata of e as a JSON-safe map: Prod
// discloses only None-policy fields, Staging and Local additionally include
// Hash/Last4 transformations (Local rendering itself does not use this; the
// HTTP boundary does).
func Fields(e *errwire.Error, m mode.Mode) map[string]any {
	md := map[string]any{}
	for entry := range e.Meta.AllWithRedaction() {
		switch {
		case entry.Redaction == metadata.None:
			md[entry.Name] = entry.Value.Any()
		case m == mode.Prod || entry.Redaction == metadata.Redact:
			// Prod allows None only; Redact never leaves Local.
		default:
			if s, ok := entry.Redaction.Apply(entry.Value); ok {
				md[entry.Name] = s
			}
		}
	}
	return md
}

// SourceChain renders the cause chain of e up to depth entries, for
// boundaries building their own staging-grade payloads.
func SourceChain(e *errwire.Error, depth int) []string {
	return sourceChain(e.Cause(), depth)
}

// sourceChain walks the cause chain through errors.Unwrap, rendering each
// level with its own Error method, up to the ceiling. Explicit iteration,
// not recursion: upstream chains can be arbitrarily long or even cyclic.
func sourceChain(cause error, depth int) []string {
	if depth <= 0 {
		depth = DefaultSourceChainDepth
	}
	var chain []string
	for cause != nil && len(chain) < depth {
		chain = append(chain, cause.Error())
		cause = errors.Unwrap(cause)
	}
	return chain
}

// marshal encodes the prepared map. The values reaching it are all
// JSON-safe by construction, so a failure indicates a bug; the fallback
// still preserves the identity pair rather than returning nothing.
func marshal(out map[string]any, e *errwire.Error) []byte {
	b, err := json.Marshal(out)
	if err != nil {
		b, _ = json.Marshal(map[string]any{
			keyKind: e.Kind.String(),
			keyCode: string(e.Code),
		})
	}
	return b
}

func reservedKey(name string) bool {
	switch name {
	case keyKind, keyCode, keyMessage, keyDetails, keySourceChain, keyMetadata:
		return true
	}
	return false
}
