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
	"net/http"

	"errwire.dev/errwire/code"
	"errwire.dev/errwire/kind"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// per-code tables, seeded from library defaults.
	codeHTTP    map[code.Code]int
	codeGRPC    map[code.Code]codes.Code
	codeProblem map[code.Code]string

	// exact user overrides, above defaults in resolution order.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// per-kind fallbacks for codes the tables have never seen.
	kindHTTP map[kind.Kind]int
	kindGRPC map[kind.Kind]codes.Code

	// base URI for generated problem types.
	problemBase string

	// ultimate fallbacks if neither code nor kind resolves.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder seeds a builder with the library tables, copied so option
// application never touches package state.
func newBuilder() *builder {
	b := &builder{
		codeHTTP:     make(map[code.Code]int, len(defaultHTTP)),
		codeGRPC:     make(map[code.Code]codes.Code, len(defaultGRPC)),
		codeProblem:  make(map[code.Code]string),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		kindHTTP:     make(map[kind.Kind]int, len(kindHTTP)),
		kindGRPC:     make(map[kind.Kind]codes.Code, len(kindGRPC)),
		problemBase:  DefaultProblemBase,
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.codeHTTP[k] = v
	}
	for k, v := range defaultGRPC {
		b.codeGRPC[k] = v
	}
	for k, v := range kindHTTP {
		b.kindHTTP[k] = v
	}
	for k, v := range kindGRPC {
		b.kindGRPC[k] = v
	}
	return b
}

// Option configures the registry at build time. Options apply to an
// internal builder which New then freezes into an immutable snapshot.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP status for a code, above the
// built-in tables in resolution order.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithGRPCOverride registers an exact gRPC status for a code.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = gc }
}

// WithProblemType registers an explicit problem-type URI for a code,
// replacing the generated <base>/<code> form.
func WithProblemType(c code.Code, uri string) Option {
	return func(b *builder) { b.codeProblem[c] = uri }
}

// WithProblemBase replaces the base URI used for generated problem types.
func WithProblemBase(base string) Option {
	return func(b *builder) { b.problemBase = base }
}

// WithKindHTTPDefault replaces the category-level HTTP fallback.
func WithKindHTTPDefault(k kind.Kind, status int) Option {
	return func(b *builder) { b.kindHTTP[k] = status }
}

// WithKindGRPCDefault replaces the category-level gRPC fallback.
func WithKindGRPCDefault(k kind.Kind, gc codes.Code) Option {
	return func(b *builder) { b.kindGRPC[k] = gc }
}
