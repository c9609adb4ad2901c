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
	"errwire.dev/errwire/kind"
)

// Per-kind constructors. Each delegates to E, so the (code, kind) pairing
// and telemetry dispatch follow the same path as every other construction.

func NotFound(msg string, opts ...Option) *Error     { return E(kind.NotFound, msg, opts...) }
func Validation(msg string, opts ...Option) *Error   { return E(kind.Validation, msg, opts...) }
func Conflict(msg string, opts ...Option) *Error     { return E(kind.Conflict, msg, opts...) }
func Unauthorized(msg string, opts ...Option) *Error { return E(kind.Unauthorized, msg, opts...) }
func Forbidden(msg string, opts ...Option) *Error    { return E(kind.Forbidden, msg, opts...) }
func Internal(msg string, opts ...Option) *Error     { return E(kind.Internal, msg, opts...) }
func Database(msg string, opts ...Option) *Error     { return E(kind.Database, msg, opts...) }
func Timeout(msg string, opts ...Option) *Error      { return E(kind.Timeout, msg, opts...) }
func Network(msg string, opts ...Option) *Error      { return E(kind.Network, msg, opts...) }
func RateLimited(msg string, opts ...Option) *Error  { return E(kind.RateLimited, msg, opts...) }
func ExternalAPI(msg string, opts ...Option) *Error  { return E(kind.ExternalAPI, msg, opts...) }
func Queue(msg string, opts ...Option) *Error        { return E(kind.Queue, msg, opts...) }
func Cache(msg string, opts ...Option) *Error        { return E(kind.Cache, msg, opts...) }

func Serialization(msg string, opts ...Option) *Error {
	return E(kind.Serialization, msg, opts...)
}

func Deserialization(msg string, opts ...Option) *Error {
	return E(kind.Deserialization, msg, opts...)
}
