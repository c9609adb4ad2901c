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

package registry

import (
	"fmt"
	"strings"

	"errwire.dev/errwire"
	"errwire.dev/errwire/apis"
	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
	"errwire.dev/errwire/metadata"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot:
//
//  1. seed the builder with the library tables (HTTP, gRPC, kind fallbacks);
//  2. apply user options (overrides, problem types, kind defaults);
//  3. validate every configured status;
//  4. freeze the maps into a self-contained registry.
//
// Configuration mistakes are reported through the runtime's own taxonomy:
// an out-of-range HTTP status comes back as a Validation-kind record naming
// the offending code and value.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if err := validateBuilder(b); err != nil {
		return nil, err
	}

	r := &registry{
		codeHTTP:     freezeMap(b.codeHTTP),
		codeGRPC:     freezeMap(b.codeGRPC),
		codeProblem:  freezeMap(b.codeProblem),
		httpOverride: freezeMap(b.httpOverride),
		grpcOverride: freezeMap(b.grpcOverride),
		kindHTTP:     freezeMap(b.kindHTTP),
		kindGRPC:     freezeMap(b.kindGRPC),
		problemBase:  strings.TrimSuffix(b.problemBase, "/"),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	return r, nil
}

// MustNew is the panic-on-error variant of New, for package-level registry
// construction from options known at compile time.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// validateBuilder rejects transport statuses outside their legal ranges.
func validateBuilder(b *builder) error {
	check := func(c code.Code, status int) error {
		if status < 100 || status > 599 {
			return errwire.Validation("http status out of range",
				errwire.WithFieldOption(metadata.String("code", string(c))),
				errwire.WithFieldOption(metadata.Int("status", int64(status))),
			)
		}
		return nil
	}
	for c, v := range b.codeHTTP {
		if err := check(c, v); err != nil {
			return err
		}
	}
	for c, v := range b.httpOverride {
		if err := check(c, v); err != nil {
			return err
		}
	}
	for k, v := range b.kindHTTP {
		if v < 100 || v > 599 {
			return errwire.Validation("http status out of range",
				errwire.WithFieldOption(metadata.String("kind", k.String())),
				errwire.WithFieldOption(metadata.Int("status", int64(v))),
			)
		}
	}
	return nil
}

// registry is the frozen mapper. Lookups are two map probes in the worst
// case and safe for unsynchronized concurrent use.
type registry struct {
	codeHTTP    map[code.Code]int
	codeGRPC    map[code.Code]codes.Code
	codeProblem map[code.Code]string

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	kindHTTP map[kind.Kind]int
	kindGRPC map[kind.Kind]codes.Code

	problemBase  string
	fallbackHTTP int
	fallbackGRPC codes.Code
}

var _ apis.Mapper = (*registry)(nil)

// HTTPStatus resolves the HTTP status for (c, k).
//
// Resolution order, highest to lowest:
//  1. exact per-code override;
//  2. per-code library table;
//  3. per-kind fallback;
//  4. hardcoded ultimate fallback (500).
func (r *registry) HTTPStatus(c code.Code, k kind.Kind) int {
	if v, ok := r.httpOverride[c]; ok {
		return v
	}
	if v, ok := r.codeHTTP[c]; ok {
		return v
	}
	if v, ok := r.kindHTTP[k]; ok {
		return v
	}
	return r.fallbackHTTP
}

// GRPCStatus resolves the gRPC status for (c, k) with the same precedence
// as HTTPStatus.
func (r *registry) GRPCStatus(c code.Code, k kind.Kind) codes.Code {
	if v, ok := r.grpcOverride[c]; ok {
		return v
	}
	if v, ok := r.codeGRPC[c]; ok {
		return v
	}
	if v, ok := r.kindGRPC[k]; ok {
		return v
	}
	return r.fallbackGRPC
}

// ProblemType resolves the problem-type URI: an explicit per-code URI when
// registered, otherwise <base>/<code>.
func (r *registry) ProblemType(c code.Code, _ kind.Kind) string {
	if v, ok := r.codeProblem[c]; ok {
		return v
	}
	return r.problemBase + "/" + string(c)
}

// Status resolves all three projections with consistent matching.
func (r *registry) Status(c code.Code, k kind.Kind) apis.Status {
	return apis.Status{
		HTTP:        r.HTTPStatus(c, k),
		GRPC:        r.GRPCStatus(c, k),
		ProblemType: r.ProblemType(c, k),
	}
}

// Explain traces how the registry resolved the pair. Diagnostic tool;
// the output shape is covered by a golden test.
//
// Example:
//
//	code="not_found" kind="NotFound"
//	http: source=code -> 404
//	grpc: source=code -> NOTFOUND(5)
func (r *registry) Explain(c code.Code, k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q kind=%q\n", c, k)
	_, _ = fmt.Fprintln(&b, r.explainHTTP(c, k))
	_, _ = fmt.Fprintln(&b, r.explainGRPC(c, k))
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *registry) explainHTTP(c code.Code, k kind.Kind) string {
	if v, ok := r.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := r.codeHTTP[c]; ok {
		return fmt.Sprintf("http: source=code -> %d", v)
	}
	if v, ok := r.kindHTTP[k]; ok {
		return fmt.Sprintf("http: source=kind -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", r.fallbackHTTP)
}

func (r *registry) explainGRPC(c code.Code, k kind.Kind) string {
	show := func(src string, v codes.Code) string {
		return fmt.Sprintf("grpc: source=%s -> %s(%d)", src, strings.ToUpper(v.String()), int(v))
	}
	if v, ok := r.grpcOverride[c]; ok {
		return show("override", v)
	}
	if v, ok := r.codeGRPC[c]; ok {
		return show("code", v)
	}
	if v, ok := r.kindGRPC[k]; ok {
		return show("kind", v)
	}
	return show("fallback", r.fallbackGRPC)
}

// freezeMap detaches a builder map into a fresh copy so later builder reuse
// cannot reach the frozen registry.
func freezeMap[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
